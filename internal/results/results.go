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
	"sort"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/metrics"
	"github.com/cosmicdapp/cw20wallet/internal/wsserver"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/patrickmn/go-cache"
)

// Reporter is the surface each submission reports its single outcome to
type Reporter interface {
	Report(ctx context.Context, result *cwtypes.OperationResult)
}

// Store is a Reporter that keeps recent results for lookup, and pushes each one to websocket listeners
type Store interface {
	Reporter
	Get(ctx context.Context, id string) (*cwtypes.OperationResult, error)
	List(ctx context.Context) []*cwtypes.OperationResult
}

type resultStore struct {
	cache       *cache.Cache
	topic       string
	listLimit   int
	broadcaster wsserver.WebSocketBroadcaster
	metrics     metrics.Manager
}

// NewResultStore creates an in-memory store, with TTL and topic from configuration. The broadcaster is optional
func NewResultStore(ctx context.Context, broadcaster wsserver.WebSocketBroadcaster, mm metrics.Manager) Store {
	ttl := config.GetDuration(config.ResultsTTL)
	cleanup := config.GetDuration(config.ResultsCleanupInterval)
	log.L(ctx).Debugf("Result store ttl=%s cleanup=%s", ttl, cleanup)
	return &resultStore{
		cache:       cache.New(ttl, cleanup),
		topic:       config.GetString(config.ResultsTopic),
		listLimit:   config.GetInt(config.ResultsListLimit),
		broadcaster: broadcaster,
		metrics:     mm,
	}
}

func (rs *resultStore) Report(ctx context.Context, result *cwtypes.OperationResult) {
	if result.ID == nil {
		result.ID = cwtypes.NewUUID()
	}
	if result.Created == nil {
		result.Created = cwtypes.Now()
	}
	rs.cache.SetDefault(result.ID.String(), result)

	if result.Success {
		log.L(ctx).Infof("Result %s: %s", result.ID, result.Message)
	} else {
		log.L(ctx).Errorf("Result %s: %s %s", result.ID, result.Message, result.Error)
	}
	if rs.metrics != nil {
		rs.metrics.AllowanceCompleted(result)
	}
	if rs.broadcaster != nil {
		rs.broadcaster.Broadcast(ctx, rs.topic, result)
	}
}

func (rs *resultStore) Get(ctx context.Context, id string) (*cwtypes.OperationResult, error) {
	u, err := cwtypes.ParseUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cached, found := rs.cache.Get(u.String()); found {
		return cached.(*cwtypes.OperationResult), nil
	}
	return nil, i18n.NewError(ctx, i18n.MsgResultNotFound, id)
}

// List returns the unexpired results, newest first, up to the configured limit
func (rs *resultStore) List(ctx context.Context) []*cwtypes.OperationResult {
	items := rs.cache.Items()
	list := make([]*cwtypes.OperationResult, 0, len(items))
	for _, item := range items {
		list = append(list, item.Object.(*cwtypes.OperationResult))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Created.Time().After(list[j].Created.Time())
	})
	if rs.listLimit > 0 && len(list) > rs.listLimit {
		list = list[:rs.listLimit]
	}
	return list
}
