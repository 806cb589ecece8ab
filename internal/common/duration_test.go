package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "milliseconds", input: "250ms", expected: 250 * time.Millisecond},
		{name: "seconds", input: "30s", expected: 30 * time.Second},
		{name: "complex duration", input: "1h30m45s", expected: time.Hour + 30*time.Minute + 45*time.Second},
		{name: "zero duration", input: "0s", expected: 0},
		{name: "no unit", input: "100", wantErr: true},
		{name: "invalid unit", input: "100x", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDuration_Decoders(t *testing.T) {
	type timeoutConfig struct {
		Timeout Duration `json:"timeout" yaml:"timeout" toml:"timeout"`
	}

	t.Run("json", func(t *testing.T) {
		var cfg timeoutConfig
		require.NoError(t, json.Unmarshal([]byte(`{"timeout":"1h30m"}`), &cfg))
		assert.Equal(t, 90*time.Minute, cfg.Timeout.Duration)

		require.Error(t, json.Unmarshal([]byte(`{"timeout":"invalid"}`), &cfg))
	})

	t.Run("yaml", func(t *testing.T) {
		var cfg timeoutConfig
		require.NoError(t, yaml.Unmarshal([]byte("timeout: 500ms\n"), &cfg))
		assert.Equal(t, 500*time.Millisecond, cfg.Timeout.Duration)

		require.Error(t, yaml.Unmarshal([]byte("timeout: invalid\n"), &cfg))
	})

	t.Run("toml", func(t *testing.T) {
		var cfg timeoutConfig
		_, err := toml.Decode(`timeout = "45s"`, &cfg)
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, cfg.Timeout.Duration)
	})
}

func TestDuration_Roundtrip(t *testing.T) {
	original := struct {
		Timeout Duration `json:"timeout" yaml:"timeout"`
	}{
		Timeout: NewDuration(5 * time.Minute),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	require.JSONEq(t, `{"timeout":"5m0s"}`, string(data))

	var decoded struct {
		Timeout Duration `json:"timeout" yaml:"timeout"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Timeout.Duration, decoded.Timeout.Duration)

	data, err = yaml.Marshal(original)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, original.Timeout.Duration, decoded.Timeout.Duration)
}

func TestDuration_JSONSchema(t *testing.T) {
	schema := Duration{}.JSONSchema()

	require.NotNil(t, schema)
	assert.Equal(t, "string", schema.Type)
	assert.Equal(t, "Duration", schema.Title)
	assert.Contains(t, schema.Examples, "300ms")
}
