package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionalProbe struct {
	Name Optional[string] `json:"name,omitzero"`
	Cost Optional[Money]  `json:"cost,omitzero"`
}

func TestOptionalTriState(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		present  bool
		null     bool
		value    string
		valueSet bool
	}{
		{name: "absent", payload: `{}`, present: false},
		{name: "explicit null", payload: `{"name": null}`, present: true, null: true},
		{name: "value", payload: `{"name": "vintage radio"}`, present: true, value: "vintage radio", valueSet: true},
		{name: "empty string is a value", payload: `{"name": ""}`, present: true, value: "", valueSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p optionalProbe
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))
			assert.Equal(t, tt.present, p.Name.Present())
			assert.Equal(t, tt.null, p.Name.IsNull())
			v, ok := p.Name.Get()
			assert.Equal(t, tt.valueSet, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestOptionalMarshalOmitsAbsent(t *testing.T) {
	b, err := json.Marshal(optionalProbe{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	b, err = json.Marshal(optionalProbe{Name: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": null}`, string(b))

	b, err = json.Marshal(optionalProbe{Name: Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "x"}`, string(b))
}

func TestOptionalWrapsCustomCodecs(t *testing.T) {
	var p optionalProbe
	require.NoError(t, json.Unmarshal([]byte(`{"cost": 12.50}`), &p))
	v, ok := p.Cost.Get()
	require.True(t, ok)
	assert.True(t, v.Equal(MustMoney("12.50")))
}

func TestOptionalRoundTrip(t *testing.T) {
	in := optionalProbe{Name: Some("bin A"), Cost: Null[Money]()}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out optionalProbe
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Name, out.Name)
	assert.True(t, out.Cost.IsNull())
}
