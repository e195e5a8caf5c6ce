package advocacy

import (
	"net/http"
	"sort"
	"strings"
)

// apiVersionPrefix sits between the base URL and every endpoint path.
const apiVersionPrefix = "api/v1"

// Metric periods accepted by the metrics endpoint.
const (
	MetricsHour  = "hour"
	MetricsDay   = "day"
	MetricsWeek  = "week"
	MetricsMonth = "month"
	MetricsYear  = "year"
	MetricsAll   = "all"
)

// endpoints maps verb to the set of supported logical paths. It is built
// once and never mutated.
var endpoints = buildEndpoints(map[string][]string{
	http.MethodGet: {
		"targets/legislators",
		"districts",
		"districts/state",
		"targets/search",
		"target-groups/search",
		"targets/custom",
		"target-groups",
		"target-groups/group",
		"target-groups/message",
		"deliverability/action",
		"metrics/" + MetricsHour,
		"metrics/" + MetricsDay,
		"metrics/" + MetricsWeek,
		"metrics/" + MetricsMonth,
		"metrics/" + MetricsYear,
		"metrics/" + MetricsAll,
		"subscription",
		"committees/list",
	},
	http.MethodPost: {
		"targets/custom",
		"target-groups",
		"targets/resolve",
		"oauth/access-token",
	},
	http.MethodPut: {
		"targets/custom",
		"target-groups/group",
	},
	http.MethodDelete: {
		"targets/custom",
		"target-groups/group",
	},
})

func buildEndpoints(src map[string][]string) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(src))
	for verb, paths := range src {
		set := make(map[string]struct{}, len(paths))
		for _, p := range paths {
			set[p] = struct{}{}
		}
		out[verb] = set
	}
	return out
}

func supportedVerb(verb string) bool {
	_, ok := endpoints[verb]
	return ok
}

// endpointKey drops every segment from the third onward, so identifier
// segments never take part in validation.
func endpointKey(path string) string {
	path = strings.Trim(path, "/")
	segments := strings.SplitN(path, "/", 3)
	if len(segments) > 2 {
		segments = segments[:2]
	}
	return strings.Join(segments, "/")
}

// Supported reports whether path is registered for verb.
func Supported(verb, path string) bool {
	set, ok := endpoints[verb]
	if !ok {
		return false
	}
	_, ok = set[endpointKey(path)]
	return ok
}

// Endpoints returns a copy of the endpoint table with sorted paths.
func Endpoints() map[string][]string {
	out := make(map[string][]string, len(endpoints))
	for verb, set := range endpoints {
		paths := make([]string, 0, len(set))
		for p := range set {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		out[verb] = paths
	}
	return out
}
