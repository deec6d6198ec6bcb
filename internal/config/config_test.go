package config

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestStripJSONCommentsPreservesStrings(t *testing.T) {
	input := "{\n  // a comment\n  \"key\": \"value\", /* inline */\n  \"key2\": \"has // inside\"\n}"
	out := stripJSONComments(input)

	assert.Assert(t, !contains(out, "// a comment"), "line comment survived: %q", out)
	assert.Assert(t, !contains(out, "/* inline"), "block comment survived: %q", out)
	assert.Assert(t, contains(out, "has // inside"), "comment-looking string content was stripped: %q", out)
}

func TestVueCompilerOptionsDefaults(t *testing.T) {
	var v VueCompilerOptions
	assert.Equal(t, v.TargetVersion(), 3.5)
	assert.DeepEqual(t, v.FileExtensions(), []string{".vue"})
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
