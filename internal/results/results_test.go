// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package results

import (
	"context"
	"testing"
	"time"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/mocks/metricsmocks"
	"github.com/cosmicdapp/cw20wallet/mocks/wsmocks"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestResultStore() (*resultStore, *wsmocks.WebSocketBroadcaster, *metricsmocks.Manager) {
	config.Reset()
	mbc := &wsmocks.WebSocketBroadcaster{}
	mmm := &metricsmocks.Manager{}
	rs := NewResultStore(context.Background(), mbc, mmm).(*resultStore)
	return rs, mbc, mmm
}

func TestReportGetList(t *testing.T) {
	rs, mbc, mmm := newTestResultStore()

	r1 := &cwtypes.OperationResult{
		Success: true,
		Message: "1 ASH allowance for wasm1abc successfully added",
		Created: cwtypes.UnixTime(1000),
	}
	r2 := &cwtypes.OperationResult{
		Success: false,
		Message: "Could not set allowance:",
		Error:   "Unauthorized",
		Created: cwtypes.UnixTime(2000),
	}
	mbc.On("Broadcast", mock.Anything, "results", r1).Return()
	mbc.On("Broadcast", mock.Anything, "results", r2).Return()
	mmm.On("AllowanceCompleted", r1).Return()
	mmm.On("AllowanceCompleted", r2).Return()

	rs.Report(context.Background(), r1)
	rs.Report(context.Background(), r2)
	assert.NotNil(t, r1.ID)
	assert.NotNil(t, r2.ID)

	got, err := rs.Get(context.Background(), r1.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, r1, got)

	list := rs.List(context.Background())
	assert.Equal(t, []*cwtypes.OperationResult{r2, r1}, list)

	mbc.AssertExpectations(t)
	mmm.AssertExpectations(t)
}

func TestReportKeepsIDAndCreated(t *testing.T) {
	config.Reset()
	rs := NewResultStore(context.Background(), nil, nil).(*resultStore)
	id := cwtypes.NewUUID()
	created := cwtypes.Now()
	r := &cwtypes.OperationResult{ID: id, Created: created, Success: true}
	rs.Report(context.Background(), r)
	assert.Equal(t, id, r.ID)
	assert.Equal(t, created, r.Created)
	got, err := rs.Get(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestGetBadID(t *testing.T) {
	rs, _, _ := newTestResultStore()
	_, err := rs.Get(context.Background(), "!uuid")
	assert.Regexp(t, "FF10115", err)
}

func TestGetNotFound(t *testing.T) {
	rs, _, _ := newTestResultStore()
	_, err := rs.Get(context.Background(), cwtypes.NewUUID().String())
	assert.Regexp(t, "FF10123", err)
}

func TestResultsExpire(t *testing.T) {
	config.Reset()
	config.Set(config.ResultsTTL, "1ms")
	rs := NewResultStore(context.Background(), nil, nil).(*resultStore)
	r := &cwtypes.OperationResult{Success: true}
	rs.Report(context.Background(), r)
	time.Sleep(10 * time.Millisecond)
	_, err := rs.Get(context.Background(), r.ID.String())
	assert.Regexp(t, "FF10123", err)
	assert.Empty(t, rs.List(context.Background()))
}

func TestListLimit(t *testing.T) {
	rs, _, _ := newTestResultStore()
	rs.broadcaster = nil
	rs.metrics = nil
	rs.listLimit = 2
	for i := 0; i < 3; i++ {
		rs.Report(context.Background(), &cwtypes.OperationResult{Created: cwtypes.UnixTime(int64(1000 + i))})
	}
	list := rs.List(context.Background())
	assert.Len(t, list, 2)
	assert.Equal(t, cwtypes.UnixTime(1002).String(), list[0].Created.String())
}
