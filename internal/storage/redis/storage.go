package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	members, err := s.client.LRange(ctx, orderIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return []model.Player{}, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = memberKey(m)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Removed between LRANGE and MGET
		}
		str, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected player value type %T", val)
		}
		var player model.Player
		if err := json.Unmarshal([]byte(str), &player); err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return getPlayer(ctx, s.client, playerKey(id))
}

func (s *Storage) GetPlayerBySquadNumber(ctx context.Context, squadNumber int) (*model.Player, error) {
	members, err := s.client.SMembers(ctx, squadIndexKey(squadNumber)).Result()
	if err != nil {
		return nil, err
	}

	switch len(members) {
	case 0:
		return nil, model.ErrPlayerNotFound
	case 1:
		return getPlayer(ctx, s.client, memberKey(members[0]))
	default:
		return nil, fmt.Errorf("%w: squad number %d is worn by players %v", model.ErrMultipleMatches, squadNumber, members)
	}
}

// Atomically runs fn inside an optimistic transaction. The tx watches every
// key fn reads, so only transactions touching the same players (or the count)
// conflict. A conflicting commit reruns the whole transaction, fn included,
// until it lands or ctx is done.
func (s *Storage) Atomically(ctx context.Context, fn func(tx storage.Tx) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.client.Watch(ctx, func(rtx *redis.Tx) error {
			t := &tx{ctx: ctx, rtx: rtx, changes: storage.NewChangeset()}
			if err := fn(t); err != nil {
				return err
			}
			return commit(ctx, rtx, t.changes)
		})

		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
}

// commit writes the staged changes in one MULTI/EXEC
func commit(ctx context.Context, rtx *redis.Tx, cs *storage.Changeset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cs.Empty() {
		return nil
	}

	changes := cs.Changes()
	payloads := make([][]byte, len(changes))
	for i, c := range changes {
		if c.Kind == storage.ChangeRemove {
			continue
		}
		data, err := json.Marshal(c.Player)
		if err != nil {
			return err
		}
		payloads[i] = data
	}

	_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, c := range changes {
			id := c.Player.ID
			member := playerMember(id)
			switch c.Kind {
			case storage.ChangeAdd:
				pipe.Set(ctx, playerKey(id), payloads[i], 0)
				pipe.RPush(ctx, orderIndexKey(), member)
				pipe.SAdd(ctx, squadIndexKey(c.Player.SquadNumber), member)
			case storage.ChangeUpdate:
				pipe.Set(ctx, playerKey(id), payloads[i], 0)
				if c.PrevSquadNumber != c.Player.SquadNumber {
					pipe.SRem(ctx, squadIndexKey(c.PrevSquadNumber), member)
					pipe.SAdd(ctx, squadIndexKey(c.Player.SquadNumber), member)
				}
			case storage.ChangeRemove:
				pipe.Del(ctx, playerKey(id))
				pipe.LRem(ctx, orderIndexKey(), 0, member)
				pipe.SRem(ctx, squadIndexKey(c.PrevSquadNumber), member)
			}
		}
		return nil
	})
	return err
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getPlayer(ctx context.Context, c stringGetter, key string) (*model.Player, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// tx reads through its own connection, watching each key it reads, overlaid
// with staged changes
type tx struct {
	ctx     context.Context
	rtx     *redis.Tx
	changes *storage.Changeset
}

func (t *tx) GetPlayer(id model.PlayerID) (*model.Player, error) {
	if p, staged := t.changes.Lookup(id); staged {
		if p == nil {
			return nil, model.ErrPlayerNotFound
		}
		return p, nil
	}
	key := playerKey(id)
	if err := t.rtx.Watch(t.ctx, key).Err(); err != nil {
		return nil, err
	}
	return getPlayer(t.ctx, t.rtx, key)
}

func (t *tx) CountPlayers() (int, error) {
	if err := t.rtx.Watch(t.ctx, orderIndexKey()).Err(); err != nil {
		return 0, err
	}
	n, err := t.rtx.LLen(t.ctx, orderIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n) + t.changes.Delta(), nil
}

func (t *tx) AddPlayer(p *model.Player) {
	t.changes.Add(p)
}

func (t *tx) RemovePlayer(p *model.Player) {
	t.changes.Remove(p)
}

func (t *tx) ApplyUpdate(existing, incoming *model.Player) {
	t.changes.ApplyUpdate(existing, incoming)
}
