package resolver

import "strings"

// Segments common to proxied and versioned mounts that never name a resource.
var pathSkipList = map[string]bool{
	"api": true,
	"v1":  true,
	"v2":  true,
	"v3":  true,
	"v4":  true,
}

// Infrastructure roots that look like resources but never are (e.g. a
// "/health" probe endpoint). Operations under these stay unattributed.
var reservedRoots = map[string]bool{
	"health":       true,
	"healthz":      true,
	"livez":        true,
	"readyz":       true,
	"ping":         true,
	"metrics":      true,
	"docs":         true,
	"redoc":        true,
	"openapi.json": true,
	"ws":           true,
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

func isParamSegment(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// resourceSegments returns the path's literal segments with parameter
// placeholders and the version/prefix skip-list removed.
func resourceSegments(path string) []string {
	var segments []string
	for _, seg := range splitPath(path) {
		if isParamSegment(seg) {
			continue
		}
		if pathSkipList[strings.ToLower(seg)] {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

// ResourceName derives the candidate resource name for a path template: the
// first segment left after normalization. An empty result means the operation
// belongs to no resource (e.g. "/health").
func ResourceName(path string) string {
	segments := resourceSegments(path)
	if len(segments) == 0 {
		return ""
	}
	if reservedRoots[strings.ToLower(segments[0])] {
		return ""
	}
	return segments[0]
}

func hasLiteralSegment(segments []string) bool {
	for _, seg := range segments {
		if !isParamSegment(seg) {
			return true
		}
	}
	return false
}
