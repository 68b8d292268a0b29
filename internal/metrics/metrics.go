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

package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
)

var mutex = &sync.Mutex{}

type Manager interface {
	AllowanceSubmitted(id *cwtypes.UUID, operation cwtypes.AllowanceOperation)
	AllowanceCompleted(result *cwtypes.OperationResult)
	ChainQuery(query string)
	AddTime(id string)
	GetTime(id string) time.Time
	DeleteTime(id string)
	IsMetricsEnabled() bool
}

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
	timeMap        map[string]time.Time
}

func NewMetricsManager(ctx context.Context) Manager {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(config.MetricsEnabled),
		timeMap:        make(map[string]time.Time),
	}
	if mm.metricsEnabled {
		// Collectors are created on first use of the registry
		Registry()
	}
	return mm
}

func (mm *metricsManager) AllowanceSubmitted(id *cwtypes.UUID, operation cwtypes.AllowanceOperation) {
	if !mm.metricsEnabled || id == nil {
		return
	}
	AllowanceSubmittedCounter.WithLabelValues(string(operation)).Inc()
	mm.AddTime(id.String())
}

func (mm *metricsManager) AllowanceCompleted(result *cwtypes.OperationResult) {
	if !mm.metricsEnabled || result == nil || result.ID == nil {
		return
	}
	id := result.ID.String()
	start := mm.GetTime(id)
	mm.DeleteTime(id)
	if !start.IsZero() {
		AllowanceHistogram.Observe(time.Since(start).Seconds())
	}
	if result.Success {
		AllowanceSucceededCounter.WithLabelValues(string(result.Operation)).Inc()
	} else {
		AllowanceFailedCounter.Inc()
	}
}

func (mm *metricsManager) ChainQuery(query string) {
	if !mm.metricsEnabled {
		return
	}
	ChainQueriesCounter.WithLabelValues(query).Inc()
}

func (mm *metricsManager) AddTime(id string) {
	mutex.Lock()
	mm.timeMap[id] = time.Now()
	mutex.Unlock()
}

func (mm *metricsManager) GetTime(id string) time.Time {
	mutex.Lock()
	time := mm.timeMap[id]
	mutex.Unlock()
	return time
}

func (mm *metricsManager) DeleteTime(id string) {
	mutex.Lock()
	delete(mm.timeMap, id)
	mutex.Unlock()
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}
