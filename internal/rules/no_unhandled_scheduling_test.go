package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoUnhandledScheduling(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		src   string
		count int
	}{
		{name: "bare timeout", path: "a.js", src: `setTimeout(run, 10);`, count: 1},
		{name: "window interval", path: "a.js", src: `window.setInterval(poll, 1000);`, count: 1},
		{name: "globalThis timeout", path: "a.js", src: `globalThis.setTimeout(run);`, count: 1},
		{name: "asserted receiver", path: "a.ts", src: `(window as any).setTimeout(run, 10);`, count: 1},
		{name: "inside a function body", path: "a.js", src: "function start() {\n  setInterval(tick, 5);\n}", count: 1},
		{name: "handle is kept", path: "a.js", src: `const id = setTimeout(run, 10);`},
		{name: "handle is assigned", path: "a.js", src: `this.timer = setInterval(poll, 1000);`},
		{name: "handle is returned", path: "a.js", src: `function later() { return setTimeout(run); }`},
		{name: "other receiver", path: "a.js", src: `scheduler.setTimeout(run, 10);`},
		{name: "if without block", path: "a.js", src: `if (ready) setTimeout(run, 10);`},
		{name: "arrow body", path: "a.js", src: `const later = () => setTimeout(run);`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, lintCode(t, NoUnhandledScheduling(), nil, tt.path, tt.src), tt.count)
		})
	}
}

func TestNoUnhandledSchedulingMessage(t *testing.T) {
	findings := lintCode(t, NoUnhandledScheduling(), nil, "a.js", `window.setInterval(poll, 1000);`)
	require.Len(t, findings, 1)
	assert.Equal(t,
		"Avoid scheduling uncancellable `setInterval` tasks. Use the returned handle to cancel the operation with `clearInterval` when needed.",
		findings[0].Message)
	assert.Equal(t, 1, findings[0].Column)
	assert.Equal(t, 31, findings[0].EndColumn)
}
