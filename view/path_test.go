package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cwd := Resolve("/a/b", RootPath())

	tests := []struct {
		name string
		raw  string
		cwd  VirtualPath
		want string
	}{
		{name: "empty stays", raw: "", cwd: cwd, want: "/a/b"},
		{name: "relative appends", raw: "c", cwd: cwd, want: "/a/b/c"},
		{name: "absolute anchors", raw: "/c", cwd: cwd, want: "/c"},
		{name: "root", raw: "/", cwd: cwd, want: "/"},
		{name: "dot ignored", raw: "./c/.", cwd: cwd, want: "/a/b/c"},
		{name: "dotdot pops", raw: "..", cwd: cwd, want: "/a"},
		{name: "dotdot clamps at root", raw: "../../../..", cwd: cwd, want: "/"},
		{name: "dotdot after clamp continues", raw: "../../../../x", cwd: cwd, want: "/x"},
		{name: "absolute dotdot", raw: "/..", cwd: cwd, want: "/"},
		{name: "tilde resets", raw: "~", cwd: cwd, want: "/"},
		{name: "tilde discards prefix", raw: "c/d/~/e", cwd: cwd, want: "/e"},
		{name: "tilde prefix is literal", raw: "~user", cwd: RootPath(), want: "/~user"},
		{name: "backslash separators", raw: `\x\y`, cwd: cwd, want: "/x/y"},
		{name: "mixed separators", raw: `x\y/z`, cwd: RootPath(), want: "/x/y/z"},
		{name: "repeated separators collapse", raw: "//x///y//", cwd: RootPath(), want: "/x/y"},
		{name: "casing preserved", raw: "DiR1", cwd: RootPath(), want: "/DiR1"},
		{name: "triple dot is a name", raw: "...", cwd: RootPath(), want: "/..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw, tt.cwd).String())
		})
	}
}

func TestResolve_NeverStoresSpecialSegments(t *testing.T) {
	p := Resolve(`a/./b/../~/c/..\d/./..\..\e`, RootPath())
	for _, s := range p.Segments() {
		assert.NotContains(t, []string{"", ".", "..", "~"}, s)
	}
	assert.Equal(t, "/e", p.String())
}

func TestResolve_DoesNotMutateCwd(t *testing.T) {
	cwd := Resolve("/a/b", RootPath())
	_ = Resolve("..", cwd)
	_ = Resolve("c", cwd)
	assert.Equal(t, "/a/b", cwd.String())

	segments := cwd.Segments()
	segments[0] = "changed"
	assert.Equal(t, "/a/b", cwd.String())
}

func TestVirtualPath_Accessors(t *testing.T) {
	root := RootPath()
	assert.True(t, root.IsRoot())
	assert.Equal(t, "/", root.Name())
	assert.Equal(t, "/", root.String())
	assert.True(t, root.Parent().IsRoot())

	p := root.Join("dir1/file2")
	assert.False(t, p.IsRoot())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "file2", p.Name())
	assert.Equal(t, "/dir1", p.Parent().String())
	assert.True(t, p.Equal(Resolve("/dir1/file2", root)))
	assert.False(t, p.Equal(root))
}
