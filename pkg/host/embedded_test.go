package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindScriptBlock(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		path     string
		text     string
		wantOK   bool
		wantBody string
		wantPath string
	}{
		{
			name:     "typescript setup script",
			path:     "App.vue",
			text:     "<template/>\n<script setup lang=\"ts\">\n  import a from 'a'\n</script>",
			wantOK:   true,
			wantBody: "import a from 'a'\n",
			wantPath: "App.vue.ts",
		},
		{
			name:     "plain script",
			path:     "App.svelte",
			text:     "<SCRIPT>import a from 'a'</SCRIPT>",
			wantOK:   true,
			wantBody: "import a from 'a'",
			wantPath: "App.svelte.jsx",
		},
		{
			name:     "skips empty blocks",
			path:     "App.vue",
			text:     "<script src=\"./x.js\"></script>\n<script lang='tsx'>\nimport b from 'b'\n</script>",
			wantOK:   true,
			wantBody: "import b from 'b'\n",
			wantPath: "App.vue.tsx",
		},
		{
			name:   "no script",
			path:   "App.vue",
			text:   "<template><div/></template>",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ok := findScriptBlock(tt.path, tt.text)
			req.Equal(tt.wantOK, ok)
			if !ok {
				return
			}
			req.Equal(tt.wantBody, block.body)
			req.Equal(tt.wantPath, block.virtualPath)
			req.Equal(tt.wantBody, tt.text[block.offset:block.offset+len(block.body)])
		})
	}
}

func TestIsComponentTemplate(t *testing.T) {
	req := require.New(t)
	req.True(isComponentTemplate("App.vue"))
	req.True(isComponentTemplate("src/Card.SVELTE"))
	req.False(isComponentTemplate("App.tsx"))
	req.False(isComponentTemplate("vue"))
}
