package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "three results",
			input: "A^~B v B^~A + ~C^B,  A v C,  A^(B v C)",
			want: `  A B C
  0 0 0  0 0 0
  0 0 1  0 1 0
  0 1 0  1 0 0
  0 1 1  1 1 0
  1 0 0  1 1 0
  1 0 1  1 1 1
  1 1 0  1 1 1
  1 1 1  0 1 1
`,
		},
		{
			name:  "single result",
			input: "(A ∧ ¬B) ∨ (B ∧ ¬A) ∨ (C ⊕ ¬B)",
			want: `  A B C
  0 0 0  1
  0 0 1  0
  0 1 0  1
  0 1 1  1
  1 0 0  1
  1 0 1  1
  1 1 0  0
  1 1 1  1
`,
		},
		{
			name:  "no variables",
			input: "T, F",
			want:  "  \n   1 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RenderTable(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RenderTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildTable_RowCount(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"A", "A ∧ B", "p → q → r", "a ⊕ b ⊕ c ⊕ d, a", "T"} {
		table, err := BuildTable(text)
		require.NoError(t, err, text)
		assert.Len(t, table.Rows, 1<<len(Variables(text)), text)
	}
}

func TestBuildTable_SyntaxError(t *testing.T) {
	t.Parallel()
	_, err := BuildTable("(A ∧ B")
	var se *SyntaxError
	assert.ErrorAs(t, err, &se)
}

func TestValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text string
		want bool
	}{
		{"A ∨ ¬A", true},
		{"A ∧ ¬A", false},
		{"x v y^z <=> (x v y)^(x v z)", true},
		{"A → A, B ∨ ¬B", true},
		{"A → A, B", false},
		{"T", true},
		{"F", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, err := Valid(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValid_SyntaxErrors(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "(A ∧ B", "A B", "A,"} {
		_, err := Valid(text)
		var se *SyntaxError
		assert.ErrorAs(t, err, &se, "%q", text)
	}
}

func TestEquivalent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want bool
	}{
		{"¬(A∧B)", "¬A∨¬B", true},
		{"A → B", "¬B → ¬A", true},
		{"A → B", "B → A", false},
		{"A", "A ∨ (B ∧ ¬B)", true},
		{"A, B", "A", false},
		{"A, B", "¬¬A, B ∧ T", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+" ≡ "+tt.b, func(t *testing.T) {
			t.Parallel()
			got, err := Equivalent(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompiled_Reuse(t *testing.T) {
	t.Parallel()
	c, err := New("A ⊕ B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, c.Variables)

	var got []bool
	for a := range c.Assignments() {
		for v, err := range c.Eval(a) {
			require.NoError(t, err)
			got = append(got, v)
		}
	}
	assert.Equal(t, []bool{false, true, true, false}, got)

	ok, err := c.Valid()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompiled_Falsify(t *testing.T) {
	t.Parallel()
	c, err := New("A → B, A ∨ B")
	require.NoError(t, err)

	a, found, err := c.Falsify()
	require.NoError(t, err)
	require.True(t, found)
	// (0,0) falsifies the second result before (1,0) falsifies the first
	assert.Equal(t, Assignment{"A": false, "B": false}, a)
	assert.Equal(t, "A=0 B=0", FormatAssignment(c.Variables, a))

	c, err = New("A ∨ ¬A")
	require.NoError(t, err)
	a, found, err = c.Falsify()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, a)
}
