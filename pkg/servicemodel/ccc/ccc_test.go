// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package ccc

import (
	"context"
	"testing"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onosproject/e2-agent/api/e2ap"
	cccapi "github.com/onosproject/e2-agent/api/e2sm/ccc"
	"github.com/onosproject/e2-agent/api/e2sm/common"
	"github.com/onosproject/e2-agent/pkg/model"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/store/subscriptions"
)

// testCodec is an in-memory stand-in for the CCC codec plugin.
type testCodec struct {
	headers  map[string]*cccapi.ControlHeader
	messages map[string]*cccapi.ControlMessage
	outcomes []*cccapi.ControlOutcome
}

func newTestCodec() *testCodec {
	return &testCodec{
		headers:  make(map[string]*cccapi.ControlHeader),
		messages: make(map[string]*cccapi.ControlMessage),
	}
}

func (c *testCodec) ServiceModelOID() modelplugins.OID {
	return modelplugins.OID(ranFunctionE2SmOid)
}

func (c *testCodec) ControlHeaderFromASN1(bytes []byte) (*cccapi.ControlHeader, error) {
	if header, ok := c.headers[string(bytes)]; ok {
		return header, nil
	}
	return nil, errors.New(errors.Invalid, "unknown control header")
}

func (c *testCodec) ControlMessageFromASN1(bytes []byte) (*cccapi.ControlMessage, error) {
	if message, ok := c.messages[string(bytes)]; ok {
		return message, nil
	}
	return nil, errors.New(errors.Invalid, "unknown control message")
}

func (c *testCodec) ControlOutcomeToASN1(outcome *cccapi.ControlOutcome) ([]byte, error) {
	c.outcomes = append(c.outcomes, outcome)
	return []byte{0x2a}, nil
}

func (c *testCodec) lastOutcome() *cccapi.ControlOutcome {
	if len(c.outcomes) == 0 {
		return nil
	}
	return c.outcomes[len(c.outcomes)-1]
}

// testConfigurator counts dispatches and answers with a fixed outcome.
type testConfigurator struct {
	calls    int
	success  bool
	requests []*ConfigRequest
}

func (c *testConfigurator) HandleConfigRequest(ctx context.Context, request *ConfigRequest) (*ConfigResponse, error) {
	c.calls++
	c.requests = append(c.requests, request)
	return &ConfigResponse{Success: c.success}, nil
}

func newTestServiceModel(t *testing.T, configurator Configurator) (*Client, *testCodec) {
	agentModel := &model.Model{
		PlmnID: 1,
		Node:   model.Node{Type: model.NodeTypeDu, GnbID: 5152},
	}
	codec := newTestCodec()
	plugins := modelplugins.NewModelRegistry()
	require.NoError(t, plugins.RegisterPlugin(codec))

	sm, err := NewServiceModel(agentModel.Node, agentModel, plugins, subscriptions.NewStore(), configurator)
	require.NoError(t, err)
	return sm.Client.(*Client), codec
}

func ratioPtr(value int32) *int32 {
	return &value
}

func rrmPolicyRatio(min *int32, max *int32, ded *int32) *cccapi.ORrmPolicyRatio {
	resourceType := cccapi.ResourceTypePrbDl
	return &cccapi.ORrmPolicyRatio{
		ResourceType: &resourceType,
		RrmPolicyMemberList: []*cccapi.RrmPolicyMember{
			{
				PlmnID: &common.PlmnIdentity{Value: []byte{0x00, 0xf1, 0x10}},
				Snssai: &common.Snssai{Sst: []byte{0x01}, Sd: []byte{0x01, 0x02, 0x03}},
			},
		},
		RrmPolicyMinRatio: min,
		RrmPolicyMaxRatio: max,
		RrmPolicyDedRatio: ded,
	}
}

func controlMessage(ratio *cccapi.ORrmPolicyRatio, nci uint64) *cccapi.ControlMessage {
	values := &cccapi.AttributeValues{
		RanConfigStructure: &cccapi.RanConfigurationStructure{ORrmPolicyRatio: ratio},
	}
	return &cccapi.ControlMessage{
		ControlMessageFormat2: &cccapi.ControlMessageFormat2{
			ListOfCellsControl: []*cccapi.CellControlItem{
				{
					CellGlobalID: &common.Cgi{
						NrCgi: &common.NrCgi{
							PlmnID:   &common.PlmnIdentity{Value: []byte{0x00, 0xf1, 0x10}},
							NrCellID: nci,
						},
					},
					ListOfConfigStructures: []*cccapi.ConfigurationStructureWrite{
						{
							RanConfigStructureName: "O-RRMPolicyRatio",
							OldValuesOfAttributes:  values,
							NewValuesOfAttributes:  values,
						},
					},
				},
			},
		},
	}
}

func controlRequest() *e2ap.RiccontrolRequest {
	return &e2ap.RiccontrolRequest{
		RicRequestID:      e2ap.RicRequestID{RicRequestorID: 1, RicInstanceID: 2},
		RanFunctionID:     2,
		RicControlHeader:  []byte("header"),
		RicControlMessage: []byte("message"),
	}
}

// Happy path: one cell, one policy with all three ratios; the configurator
// accepts and every requested structure is echoed as accepted.
func TestControlRrmPolicyRatioAccepted(t *testing.T) {
	configurator := &testConfigurator{success: true}
	sm, codec := newTestServiceModel(t, configurator)

	codec.headers["header"] = &cccapi.ControlHeader{
		ControlHeaderFormat1: &cccapi.ControlHeaderFormat1{RicStyleType: 2},
	}
	codec.messages["message"] = controlMessage(rrmPolicyRatio(ratioPtr(10), ratioPtr(80), ratioPtr(50)), 1)

	acknowledge, failure, err := sm.RICControl(context.Background(), controlRequest())
	require.NoError(t, err)
	require.Nil(t, failure)
	require.NotNil(t, acknowledge)
	assert.NotEmpty(t, acknowledge.RicControlOutcome)
	assert.Equal(t, 1, configurator.calls)

	outcome := codec.lastOutcome()
	require.NotNil(t, outcome)
	cells := outcome.ControlOutcomeFormat2.ListOfCellsForControlOutcome
	require.Len(t, cells, 1)
	require.Len(t, cells[0].RanConfigStructuresAcceptedList, 1)
	assert.Empty(t, cells[0].RanConfigStructuresFailedList)
	accepted := cells[0].RanConfigStructuresAcceptedList[0]
	assert.Equal(t, "O-RRMPolicyRatio", accepted.RanConfigStructureName)
	assert.NotNil(t, accepted.OldValuesOfAttributes)
	assert.NotNil(t, accepted.CurrentValuesOfAttributes)
}

// A missing dedicated ratio fails the request before it reaches the
// configurator; the outcome mirrors the structures as failed with the
// unspecified cause.
func TestControlMissingRatioFails(t *testing.T) {
	configurator := &testConfigurator{success: true}
	sm, codec := newTestServiceModel(t, configurator)

	codec.headers["header"] = &cccapi.ControlHeader{
		ControlHeaderFormat1: &cccapi.ControlHeaderFormat1{RicStyleType: 2},
	}
	codec.messages["message"] = controlMessage(rrmPolicyRatio(ratioPtr(10), ratioPtr(80), nil), 1)

	acknowledge, failure, err := sm.RICControl(context.Background(), controlRequest())
	require.NoError(t, err)
	assert.Nil(t, acknowledge)
	require.NotNil(t, failure)
	assert.Equal(t, 0, configurator.calls)
	require.NotNil(t, failure.Cause)
	require.NotNil(t, failure.Cause.Misc)
	assert.Equal(t, e2ap.CauseMiscUnspecified, *failure.Cause.Misc)
	assert.NotEmpty(t, failure.RicControlOutcome)

	outcome := codec.lastOutcome()
	cells := outcome.ControlOutcomeFormat2.ListOfCellsForControlOutcome
	require.Len(t, cells, 1)
	require.Len(t, cells[0].RanConfigStructuresFailedList, 1)
	failed := cells[0].RanConfigStructuresFailedList[0]
	assert.Equal(t, cccapi.CauseUnspecified, failed.Cause)
	assert.NotNil(t, failed.RequestedValuesOfAttributes)
}

// A zero NR cell id or a wrong style is rejected without touching the
// configurator.
func TestControlSupportChecks(t *testing.T) {
	configurator := &testConfigurator{success: true}
	sm, codec := newTestServiceModel(t, configurator)

	codec.headers["header"] = &cccapi.ControlHeader{
		ControlHeaderFormat1: &cccapi.ControlHeaderFormat1{RicStyleType: 2},
	}
	codec.headers["wrong-style"] = &cccapi.ControlHeader{
		ControlHeaderFormat1: &cccapi.ControlHeaderFormat1{RicStyleType: 1},
	}
	codec.messages["message"] = controlMessage(rrmPolicyRatio(ratioPtr(10), ratioPtr(80), ratioPtr(50)), 0)

	_, failure, err := sm.RICControl(context.Background(), controlRequest())
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, 0, configurator.calls)

	request := controlRequest()
	request.RicControlHeader = []byte("wrong-style")
	codec.messages["message"] = controlMessage(rrmPolicyRatio(ratioPtr(10), ratioPtr(80), ratioPtr(50)), 1)
	_, failure, err = sm.RICControl(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, 0, configurator.calls)
}

func TestSubscriptionNotSupported(t *testing.T) {
	sm, _ := newTestServiceModel(t, &testConfigurator{})
	_, _, err := sm.RICSubscription(context.Background(), &e2ap.RicsubscriptionRequest{})
	assert.Error(t, err)
	_, _, err = sm.RICSubscriptionDelete(context.Background(), &e2ap.RicsubscriptionDeleteRequest{})
	assert.Error(t, err)
}
