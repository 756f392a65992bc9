// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onosproject/e2-agent/api/e2ap"
	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/model"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	e2chan "github.com/onosproject/e2-agent/pkg/northbound/e2"
	"github.com/onosproject/e2-agent/pkg/store/subscriptions"
)

// testCodec is an in-memory stand-in for the PER codec plugin: packed action
// definitions and event triggers are looked up by their byte string, packed
// indications are captured for inspection.
type testCodec struct {
	mu       sync.Mutex
	actions  map[string]*kpmapi.ActionDefinition
	triggers map[string]*kpmapi.EventTriggerDefinition
	headers  []*kpmapi.IndicationHeaderFormat1
	messages []*kpmapi.IndicationMessage
}

func newTestCodec() *testCodec {
	return &testCodec{
		actions:  make(map[string]*kpmapi.ActionDefinition),
		triggers: make(map[string]*kpmapi.EventTriggerDefinition),
	}
}

func (c *testCodec) ServiceModelOID() modelplugins.OID {
	return modelplugins.OID(ranFunctionE2SmOid)
}

func (c *testCodec) ActionDefinitionFromASN1(bytes []byte) (*kpmapi.ActionDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if action, ok := c.actions[string(bytes)]; ok {
		return action, nil
	}
	return nil, errors.New(errors.Invalid, "unknown action definition")
}

func (c *testCodec) EventTriggerDefinitionFromASN1(bytes []byte) (*kpmapi.EventTriggerDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if trigger, ok := c.triggers[string(bytes)]; ok {
		return trigger, nil
	}
	return nil, errors.New(errors.Invalid, "unknown event trigger definition")
}

func (c *testCodec) IndicationHeaderToASN1(header *kpmapi.IndicationHeader) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := *header.IndicationHeaderFormat1
	snapshot.ColletStartTime = append([]byte(nil), header.IndicationHeaderFormat1.ColletStartTime...)
	c.headers = append(c.headers, &snapshot)
	return snapshot.ColletStartTime, nil
}

func (c *testCodec) IndicationMessageToASN1(message *kpmapi.IndicationMessage) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, cloneIndicationMessage(message))
	return []byte{0x2a}, nil
}

func (c *testCodec) RanFunctionDescriptionToASN1(description *kpmapi.RanFunctionDescription) ([]byte, error) {
	return []byte(description.RanFunctionName.RanFunctionShortName), nil
}

func (c *testCodec) lastMessage() *kpmapi.IndicationMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

// cloneIndicationMessage snapshots the row slices of a packed message so the
// capture survives the window clear that follows the pack.
func cloneIndicationMessage(message *kpmapi.IndicationMessage) *kpmapi.IndicationMessage {
	clone := &kpmapi.IndicationMessage{}
	if f1 := message.IndicationMessageFormat1; f1 != nil {
		clone.IndicationMessageFormat1 = cloneFormat1(f1)
	}
	if f2 := message.IndicationMessageFormat2; f2 != nil {
		clone.IndicationMessageFormat2 = &kpmapi.IndicationMessageFormat2{
			MeasData: cloneMeasData(f2.MeasData),
		}
		for _, condItem := range f2.MeasCondUeIDList {
			condClone := *condItem
			condClone.MatchingUeIDList = append([]*kpmapi.MatchingUeIDItem(nil), condItem.MatchingUeIDList...)
			clone.IndicationMessageFormat2.MeasCondUeIDList = append(clone.IndicationMessageFormat2.MeasCondUeIDList, &condClone)
		}
	}
	if f3 := message.IndicationMessageFormat3; f3 != nil {
		clone.IndicationMessageFormat3 = &kpmapi.IndicationMessageFormat3{}
		for _, report := range f3.UeMeasReportList {
			clone.IndicationMessageFormat3.UeMeasReportList = append(clone.IndicationMessageFormat3.UeMeasReportList,
				&kpmapi.UeMeasurementReportItem{
					UeID:       report.UeID,
					MeasReport: cloneFormat1(report.MeasReport),
				})
		}
	}
	return clone
}

func cloneFormat1(f1 *kpmapi.IndicationMessageFormat1) *kpmapi.IndicationMessageFormat1 {
	return &kpmapi.IndicationMessageFormat1{
		MeasData:     cloneMeasData(f1.MeasData),
		MeasInfoList: f1.MeasInfoList,
		GranulPeriod: f1.GranulPeriod,
	}
}

func cloneMeasData(data *kpmapi.MeasurementData) *kpmapi.MeasurementData {
	clone := &kpmapi.MeasurementData{}
	for _, item := range data.Value {
		clone.Value = append(clone.Value, &kpmapi.MeasurementDataItem{
			MeasRecord: &kpmapi.MeasurementRecord{
				Value: append([]*kpmapi.MeasurementRecordItem(nil), item.MeasRecord.Value...),
			},
			IncompleteFlag: item.IncompleteFlag,
		})
	}
	return clone
}

// testChannel captures the RIC indications a subscription delivers.
type testChannel struct {
	mu          sync.Mutex
	ctx         context.Context
	indications []*e2ap.Ricindication
}

func newTestChannel() *testChannel {
	return &testChannel{ctx: context.Background()}
}

func (c *testChannel) RICIndication(ctx context.Context, indication *e2ap.Ricindication) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indications = append(c.indications, indication)
	return nil
}

func (c *testChannel) Context() context.Context {
	return c.ctx
}

func (c *testChannel) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.indications)
}

func testModel() *model.Model {
	return &model.Model{
		PlmnID: 314628,
		Node: model.Node{
			Type:  model.NodeTypeDu,
			GnbID: 5152,
			Cells: []model.Cell{{NCGI: 84325717505}},
		},
	}
}

func duUe(index int64) *common.UeID {
	return &common.UeID{GnbDuUeID: &common.UeIDGnbDu{GnbCuUeF1ApID: index}}
}

func rlcReport(ue metrics.UeIndex, dlSduBytes uint64, ulSduBytes uint64) metrics.RlcMetrics {
	return metrics.RlcMetrics{
		UeIndex:       ue,
		TxHigh:        metrics.RlcTxHighMetrics{NumSdus: 10, NumSduBytes: dlSduBytes},
		TxLow:         metrics.RlcTxLowMetrics{NumPduBytesNoSegmentation: dlSduBytes},
		Rx:            metrics.RlcRxMetrics{NumSdus: 5, NumSduBytes: ulSduBytes, NumPduBytes: ulSduBytes},
		MetricsPeriod: time.Second,
	}
}

func noLabelInfoList() []*kpmapi.LabelInfoItem {
	return []*kpmapi.LabelInfoItem{{MeasLabel: &kpmapi.MeasurementLabel{NoLabel: true}}}
}

func measInfo(names ...string) []*kpmapi.MeasurementInfoItem {
	items := make([]*kpmapi.MeasurementInfoItem, 0, len(names))
	for _, name := range names {
		items = append(items, &kpmapi.MeasurementInfoItem{
			MeasType:      kpmapi.MeasurementType{MeasName: name},
			LabelInfoList: noLabelInfoList(),
		})
	}
	return items
}

func newTestServiceModel(t *testing.T) (*Client, *provider.DuProvider, *testCodec) {
	agentModel := testModel()
	duProvider, err := provider.NewDuProvider(agentModel.CellCgis())
	require.NoError(t, err)

	codec := newTestCodec()
	plugins := modelplugins.NewModelRegistry()
	require.NoError(t, plugins.RegisterPlugin(codec))

	subStore := subscriptions.NewStore()
	sm, err := NewServiceModel(agentModel.Node, agentModel, plugins, subStore, duProvider)
	require.NoError(t, err)
	assert.Equal(t, []byte(ranFunctionShortName), sm.Description)
	return sm.Client.(*Client), duProvider, codec
}

func format1Action(granularity uint64, names ...string) *kpmapi.ActionDefinition {
	return &kpmapi.ActionDefinition{
		RicStyleType: 1,
		ActionDefinitionFormat1: &kpmapi.ActionDefinitionFormat1{
			MeasInfoList: measInfo(names...),
			GranulPeriod: granularity,
		},
	}
}

func TestActionAdmission(t *testing.T) {
	sm, duProvider, codec := newTestServiceModel(t)
	duProvider.ReportRlcMetrics(rlcReport(31, 1000, 1000))

	codec.actions["style1"] = format1Action(100, "DRB.RlcSduTransmittedVolumeDL")
	codec.actions["style1-zero-granularity"] = format1Action(0, "DRB.RlcSduTransmittedVolumeDL")
	codec.actions["style1-unknown-metric"] = format1Action(100, "X.Unknown")
	codec.actions["style2-known-ue"] = &kpmapi.ActionDefinition{
		RicStyleType: 2,
		ActionDefinitionFormat2: &kpmapi.ActionDefinitionFormat2{
			UeID:          duUe(31),
			SubscriptInfo: format1Action(100, "DRB.UEThpDl").ActionDefinitionFormat1,
		},
	}
	codec.actions["style2-unknown-ue"] = &kpmapi.ActionDefinition{
		RicStyleType: 2,
		ActionDefinitionFormat2: &kpmapi.ActionDefinitionFormat2{
			UeID:          duUe(99999),
			SubscriptInfo: format1Action(100, "DRB.UEThpDl").ActionDefinitionFormat1,
		},
	}
	codec.actions["style5"] = &kpmapi.ActionDefinition{
		RicStyleType: 5,
		ActionDefinitionFormat5: &kpmapi.ActionDefinitionFormat5{
			MatchingUeIDList: []*kpmapi.UeIDItem{{UeID: duUe(31)}},
			SubscriptionInfo: format1Action(100, "DRB.UEThpDl").ActionDefinitionFormat1,
		},
	}

	action := func(definition string) *e2ap.RicactionToBeSetupItem {
		return &e2ap.RicactionToBeSetupItem{
			RicActionID:         1,
			RicActionType:       e2ap.RicactionTypeReport,
			RicActionDefinition: []byte(definition),
		}
	}

	assert.True(t, sm.actionSupported(action("style1")))
	assert.False(t, sm.actionSupported(action("style1-zero-granularity")))
	assert.False(t, sm.actionSupported(action("style1-unknown-metric")))
	assert.True(t, sm.actionSupported(action("style2-known-ue")))
	assert.False(t, sm.actionSupported(action("style2-unknown-ue")))
	assert.True(t, sm.actionSupported(action("style5")))
	assert.False(t, sm.actionSupported(action("not-decodable")))
}

// Admission is idempotent: admitting the same action twice yields the same
// verdict and the same report service shape.
func TestActionAdmissionIdempotent(t *testing.T) {
	sm, duProvider, codec := newTestServiceModel(t)
	duProvider.ReportRlcMetrics(rlcReport(31, 1000, 1000))
	codec.actions["style1"] = format1Action(100, "DRB.RlcSduTransmittedVolumeDL")

	action := &e2ap.RicactionToBeSetupItem{
		RicActionID:         1,
		RicActionType:       e2ap.RicactionTypeReport,
		RicActionDefinition: []byte("style1"),
	}
	assert.Equal(t, sm.actionSupported(action), sm.actionSupported(action))

	first, err := newReportService(codec.actions["style1"], sm.ServiceModel.MeasProvider, codec)
	require.NoError(t, err)
	second, err := newReportService(codec.actions["style1"], sm.ServiceModel.MeasProvider, codec)
	require.NoError(t, err)
	assert.IsType(t, first, second)
}

func subscriptionRequest(trigger string, actions ...*e2ap.RicactionToBeSetupItem) *e2ap.RicsubscriptionRequest {
	return &e2ap.RicsubscriptionRequest{
		RicRequestID:  e2ap.RicRequestID{RicRequestorID: 1, RicInstanceID: 2},
		RanFunctionID: 1,
		SubscriptionDetails: e2ap.RicsubscriptionDetails{
			RicEventTriggerDefinition: []byte(trigger),
			RicActionToBeSetupList:    actions,
		},
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	sm, duProvider, codec := newTestServiceModel(t)
	duProvider.ReportRlcMetrics(rlcReport(31, 10000, 5000))

	codec.actions["style1"] = format1Action(10, "DRB.RlcSduTransmittedVolumeDL")
	codec.triggers["trigger"] = &kpmapi.EventTriggerDefinition{ReportingPeriod: 10}

	channel := newTestChannel()
	ctx := e2chan.NewContextWithChannel(context.Background(), channel)
	request := subscriptionRequest("trigger", &e2ap.RicactionToBeSetupItem{
		RicActionID:         7,
		RicActionType:       e2ap.RicactionTypeReport,
		RicActionDefinition: []byte("style1"),
	})

	response, failure, err := sm.RICSubscription(ctx, request)
	require.NoError(t, err)
	require.Nil(t, failure)
	require.NotNil(t, response)
	assert.Equal(t, []int32{7}, response.RicActionsAdmitted)
	assert.Equal(t, 1, sm.ServiceModel.Subscriptions.Len())

	assert.Eventually(t, func() bool {
		return channel.count() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	deleteResponse, deleteFailure, err := sm.RICSubscriptionDelete(context.Background(), &e2ap.RicsubscriptionDeleteRequest{
		RicRequestID:  e2ap.RicRequestID{RicRequestorID: 1, RicInstanceID: 2},
		RanFunctionID: 1,
	})
	require.NoError(t, err)
	require.Nil(t, deleteFailure)
	require.NotNil(t, deleteResponse)
	assert.Equal(t, 0, sm.ServiceModel.Subscriptions.Len())
}

// A subscription naming an unknown UE is not admitted and no report service
// is created.
func TestSubscriptionUnknownUeRejected(t *testing.T) {
	sm, duProvider, codec := newTestServiceModel(t)
	duProvider.ReportRlcMetrics(rlcReport(31, 10000, 5000))

	codec.actions["style2"] = &kpmapi.ActionDefinition{
		RicStyleType: 2,
		ActionDefinitionFormat2: &kpmapi.ActionDefinitionFormat2{
			UeID:          duUe(99999),
			SubscriptInfo: format1Action(100, "DRB.UEThpDl").ActionDefinitionFormat1,
		},
	}
	codec.triggers["trigger"] = &kpmapi.EventTriggerDefinition{ReportingPeriod: 100}

	request := subscriptionRequest("trigger", &e2ap.RicactionToBeSetupItem{
		RicActionID:         3,
		RicActionType:       e2ap.RicactionTypeReport,
		RicActionDefinition: []byte("style2"),
	})
	response, failure, err := sm.RICSubscription(context.Background(), request)
	require.NoError(t, err)
	assert.Nil(t, response)
	require.NotNil(t, failure)
	require.Len(t, failure.RicActionsNotAdmitted, 1)
	assert.Equal(t, int32(3), failure.RicActionsNotAdmitted[0].RicActionID)
	assert.Equal(t, 0, sm.ServiceModel.Subscriptions.Len())
	sm.mu.Lock()
	assert.Empty(t, sm.reportServices)
	sm.mu.Unlock()
}

// INSERT and POLICY actions are never admitted by the KPM service model.
func TestInsertAndPolicyActionsNotAdmitted(t *testing.T) {
	sm, _, codec := newTestServiceModel(t)
	codec.triggers["trigger"] = &kpmapi.EventTriggerDefinition{ReportingPeriod: 100}

	request := subscriptionRequest("trigger",
		&e2ap.RicactionToBeSetupItem{RicActionID: 1, RicActionType: e2ap.RicactionTypeInsert},
		&e2ap.RicactionToBeSetupItem{RicActionID: 2, RicActionType: e2ap.RicactionTypePolicy})
	response, failure, err := sm.RICSubscription(context.Background(), request)
	require.NoError(t, err)
	assert.Nil(t, response)
	require.NotNil(t, failure)
	assert.Len(t, failure.RicActionsNotAdmitted, 2)
}

func TestControlNotSupported(t *testing.T) {
	sm, _, _ := newTestServiceModel(t)
	_, _, err := sm.RICControl(context.Background(), &e2ap.RiccontrolRequest{})
	assert.Error(t, err)
}
