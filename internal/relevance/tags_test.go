package relevance

import (
	"reflect"
	"testing"
)

func TestAssignTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "personal finance short-circuit",
			text: "government announces mutual fund taxation rules for sip investors",
			want: []string{"Personal Finance"},
		},
		{
			name: "no policy context",
			text: "heavy rain disrupts traffic in the city this morning",
			want: []string{"General News"},
		},
		{
			name: "court ruling",
			text: "supreme court bench delivers judgment on electoral bonds petition",
			want: []string{"Court Rulings"},
		},
		{
			name: "legislative and regulatory",
			text: "parliament passed the bill; notification of the new rules follows",
			want: []string{"Legislative Updates", "Regulatory Changes"},
		},
		{
			name: "default when no rule fires",
			text: "government to review governance structure next quarter",
			want: []string{"Policy Development"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignTags(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AssignTags(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAssignTagsCap(t *testing.T) {
	text := "analysis of the bill passed by parliament: regulation notification, supreme court judgment, scheme launched, bilateral treaty summit"
	got := AssignTags(text)
	if len(got) != 4 {
		t.Fatalf("got %d tags %v, want 4", len(got), got)
	}
}
