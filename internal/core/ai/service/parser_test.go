package service

import (
	"reflect"
	"testing"
)

func TestExtractCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bulleted list",
			text: "Here are some ideas:\n- Veggie Omelette\n- Pasta Aglio e Olio\n",
			want: []string{"Veggie Omelette", "Pasta Aglio e Olio"},
		},
		{
			name: "numbered list",
			text: "1. Simple Crepes\n2) Cheese Toastie\n",
			want: []string{"Simple Crepes", "Cheese Toastie"},
		},
		{
			name: "markdown emphasis stripped",
			text: "- **Veggie Omelette**\n- \"Simple Crepes\"\n",
			want: []string{"Veggie Omelette", "Simple Crepes"},
		},
		{
			name: "bulleted prose skipped",
			text: "- Use olive oil instead of butter when frying, it works in most pans and adds flavor\n- Veggie Omelette\n",
			want: []string{"Veggie Omelette"},
		},
		{
			name: "sentences and headings skipped",
			text: "Matching recipes:\nYou could try an omelette.\nVeggie Omelette\n",
			want: []string{"Veggie Omelette"},
		},
		{
			name: "duplicates removed case-insensitively",
			text: "- Veggie Omelette\n- veggie omelette\n",
			want: []string{"Veggie Omelette"},
		},
		{
			name: "no candidates",
			text: "Sorry, I could not come up with anything useful this time.\n",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCandidates(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCandidates(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}
