package planner

import (
	"github.com/cubefs/ringsplit/client"
	"github.com/cubefs/ringsplit/errors"
	"github.com/cubefs/ringsplit/proto"
)

const (
	defaultSplitSize  = 64 * 1024
	defaultMaxRetries = 3
)

type (
	// KeyRestriction narrows planning to the part of the ring covered by
	// [StartKey, EndKey). EndKey may be empty, meaning "to the end of the
	// ring". StartToken/EndToken exist only to reject configs that try to
	// combine raw token bounds with a key pair.
	KeyRestriction struct {
		StartKey   []byte `json:"start_key"`
		EndKey     []byte `json:"end_key"`
		StartToken string `json:"start_token"`
		EndToken   string `json:"end_token"`
	}

	Config struct {
		Seeds       []string `json:"seeds"`
		Port        uint32   `json:"port"`
		Keyspace    string   `json:"keyspace"`
		Table       string   `json:"table"`
		Partitioner string   `json:"partitioner"`

		// SplitSize is the target number of rows per split.
		SplitSize uint64 `json:"split_size"`
		// MaxWorkers bounds planning concurrency; 0 runs every unit on its
		// own goroutine.
		MaxWorkers int `json:"max_workers"`
		// MaxRetries is the global budget of unit resubmissions shared by
		// the whole planning pass.
		MaxRetries int `json:"max_retries"`
		// SplitTimeoutMs bounds one planning unit's network work; 0 keeps
		// units unbounded.
		SplitTimeoutMs uint32 `json:"split_timeout_ms"`

		KeyRestriction *KeyRestriction        `json:"key_restriction"`
		Credentials    *proto.Credentials     `json:"credentials"`
		Transport      client.TransportConfig `json:"transport"`
	}
)

func (cfg *Config) Validate() error {
	if cfg.Keyspace == "" {
		return errors.ErrMissingKeyspace
	}
	if cfg.Table == "" {
		return errors.ErrMissingTable
	}
	if len(cfg.Seeds) == 0 {
		return errors.ErrMissingSeeds
	}
	if cfg.Partitioner == "" {
		return errors.ErrMissingPartitioner
	}
	return nil
}

func initConfig(cfg *Config) {
	if cfg.SplitSize == 0 {
		cfg.SplitSize = defaultSplitSize
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
}
