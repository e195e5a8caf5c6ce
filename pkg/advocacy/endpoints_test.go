package advocacy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpointKey(t *testing.T) {
	cases := map[string]string{
		"districts":                              "districts",
		"targets/custom":                         "targets/custom",
		"targets/custom/42":                      "targets/custom",
		"/targets/custom/42/":                    "targets/custom",
		"deliverability/action/f1/target/t2":     "deliverability/action",
		"target-groups/group/../../subscription": "target-groups/group",
	}
	for in, want := range cases {
		require.Equal(t, want, endpointKey(in), in)
	}
}

func TestSupported(t *testing.T) {
	require.True(t, Supported(http.MethodDelete, "targets/custom/42"))
	require.True(t, Supported(http.MethodGet, "metrics/day"))
	require.True(t, Supported(http.MethodPost, "oauth/access-token"))
	require.False(t, Supported(http.MethodGet, "metrics"))
	require.False(t, Supported(http.MethodPatch, "targets/custom"))
	require.False(t, Supported(http.MethodDelete, "target-groups"))
}

func TestEndpointsReturnsCopy(t *testing.T) {
	table := Endpoints()
	require.Len(t, table, 4)
	require.Contains(t, table[http.MethodPut], "targets/custom")

	table[http.MethodPut] = append(table[http.MethodPut], "districts")
	require.False(t, Supported(http.MethodPut, "districts"))
}

func TestParams(t *testing.T) {
	p := NewParams("a", "1", "b")
	p = p.Add("c", "3")

	v, ok := p.Get("b")
	require.True(t, ok)
	require.Empty(t, v)
	_, ok = p.Get("z")
	require.False(t, ok)
	require.Len(t, p, 3)
	require.Equal(t, "c", p[2].Key)
}
