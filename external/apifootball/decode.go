package apifootball

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
)

var ErrEmptyResponse = crerr.New("live feed returned no fixture")

type envelope struct {
	Errors   any                 `json:"errors"`
	Results  int                 `json:"results"`
	Response []livefeed.Snapshot `json:"response"`
}

// DecodeSnapshot accepts either the provider envelope
// ({"response":[snapshot]}) or a bare snapshot document.
func DecodeSnapshot(raw []byte) (livefeed.Snapshot, error) {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("decode live feed payload: %w", err)
	}
	if msg := providerError(env.Errors); msg != "" {
		return livefeed.Snapshot{}, fmt.Errorf("live feed rejected request: %s", msg)
	}
	if len(env.Response) > 0 {
		return env.Response[0], nil
	}

	var snapshot livefeed.Snapshot
	if err := sonic.Unmarshal(raw, &snapshot); err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("decode live feed snapshot: %w", err)
	}
	if snapshot.FixtureID() <= 0 {
		return livefeed.Snapshot{}, ErrEmptyResponse
	}
	return snapshot, nil
}

// providerError flattens the errors field, which the provider sends as an
// empty array on success and as an object keyed by parameter on failure.
func providerError(raw any) string {
	switch value := raw.(type) {
	case map[string]any:
		for key, item := range value {
			return fmt.Sprintf("%s: %v", key, item)
		}
	case []any:
		if len(value) > 0 {
			return fmt.Sprint(value[0])
		}
	case string:
		return value
	}
	return ""
}
