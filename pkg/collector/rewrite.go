package collector

import "regexp"

var pathVariablePattern = regexp.MustCompile(`\{([^{}/]+)\}`)

// RewritePathVariables converts OpenAPI path placeholders into the
// templated-expression form used by routing templates: /pets/{petId} becomes
// =/pets/{{$parameter["petId"]}}. Paths without placeholders are returned
// unchanged since they need no expression evaluation.
func RewritePathVariables(path string) string {
	if !pathVariablePattern.MatchString(path) {
		return path
	}
	return "=" + pathVariablePattern.ReplaceAllString(path, `{{$$parameter["$1"]}}`)
}
