package validation

import "testing"

func TestNameValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain name", "Ultramarines", true},
		{"with digits", "3rd Company", true},
		{"punctuation only", "...", true},
		{"symbol only", "+", true},
		{"unicode letters", "Ērebos Guard", true},
		{"leading whitespace", "  Captain", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n ", false},
		{"control characters only", "\x00\x01\x02", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NameValid(tc.input); got != tc.want {
				t.Fatalf("NameValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestRecipeNameValid(t *testing.T) {
	if !RecipeNameValid("Gold trim") {
		t.Fatalf("RecipeNameValid rejected a plain name")
	}
	if RecipeNameValid("   ") {
		t.Fatalf("RecipeNameValid accepted whitespace")
	}
	if RecipeNameValid("") {
		t.Fatalf("RecipeNameValid accepted empty string")
	}
}

func TestRequireNameMessage(t *testing.T) {
	err := RequireName("Project name", "  ")
	if err == nil {
		t.Fatalf("RequireName accepted whitespace")
	}
	if err.Error() != "Project name is required" {
		t.Fatalf("message = %q, want %q", err.Error(), "Project name is required")
	}
	if err := RequireName("Project name", "Blood Angels"); err != nil {
		t.Fatalf("RequireName rejected a valid name: %v", err)
	}
}
