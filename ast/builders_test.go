package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestBuildTree(t *testing.T) {
	file := NewFileScope("common/traits.txt")

	assert.Equal(t, 0, file.Level)
	assert.Equal(t, "common/traits.txt", file.Address)

	trait := file.AddScope("martial_tradition")
	trait.AddBinding("martial", "2")
	trait.AddBinding("icon", `"gfx/traits/martial.dds"`)

	modifiers := trait.AddScope("modifier", WithSorted())
	modifiers.AddBinding("land_morale", "0.05")

	assert.Equal(t, 1, len(file.Members))
	assert.Equal(t, 3, len(trait.Members))
	assert.True(t, modifiers.Sorted)
}

func TestBuilderLevels(t *testing.T) {
	file := NewFileScope("test.txt")

	child := file.AddScope("child")
	grandchild := child.AddAnonymousScope()

	assert.Equal(t, 1, child.Level)
	assert.Equal(t, 2, grandchild.Level)
}

func TestBuilderOptions(t *testing.T) {
	file := NewFileScope("test.txt")

	s := file.AddScope("s",
		WithIndented(),
		WithComments("leading"),
		WithEndComments("trailing"),
	)

	assert.True(t, s.Indented)
	assert.False(t, s.Sorted)
	assert.Equal(t, []string{"leading"}, s.Comments)
	assert.Equal(t, []string{"trailing"}, s.EndComments)
}

func TestBuilderMemberOrder(t *testing.T) {
	file := NewFileScope("test.txt")

	file.AddBinding("z", "1")
	file.AddToken("m1")
	file.AddScope("a")

	// Member order is caller-controlled; builders never reorder.
	_, isBinding := file.Members[0].(*Binding)
	_, isToken := file.Members[1].(*Token)
	_, isScope := file.Members[2].(*Scope)

	assert.True(t, isBinding)
	assert.True(t, isToken)
	assert.True(t, isScope)
}
