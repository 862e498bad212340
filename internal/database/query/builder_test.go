// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package query

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterBuilder_Empty(t *testing.T) {
	fb := NewFilterBuilder()

	if !fb.IsEmpty() {
		t.Error("new builder should be empty")
	}
	if fb.Count() != 0 {
		t.Errorf("Count() = %d, want 0", fb.Count())
	}
	filter := fb.Build()
	if filter == nil || len(filter) != 0 {
		t.Errorf("Build() = %v, want empty non-nil document", filter)
	}
}

func TestFilterBuilder_SkipEmpty(t *testing.T) {
	fb := NewFilterBuilder().
		AddContains("title", "").
		AddEquals("code", "").
		AddInt("year", nil)

	if !fb.IsEmpty() {
		t.Errorf("empty values should be skipped, got %v", fb.Build())
	}
}

func TestFilterBuilder_AddContains(t *testing.T) {
	filter := NewFilterBuilder().AddContains("name", "miles").Build()

	if len(filter) != 1 || filter[0].Key != "name" {
		t.Fatalf("Build() = %v", filter)
	}
	re, ok := filter[0].Value.(primitive.Regex)
	if !ok {
		t.Fatalf("value type = %T, want primitive.Regex", filter[0].Value)
	}
	if re.Pattern != "miles" || re.Options != "i" {
		t.Errorf("regex = %+v, want {miles i}", re)
	}
}

func TestContains_EscapesMetacharacters(t *testing.T) {
	tests := []struct {
		input   string
		matches []string
		rejects []string
	}{
		{"blue", []string{"Blue in Green", "KIND OF BLUE"}, []string{"Green"}},
		{"a.b", []string{"xa.by"}, []string{"axb"}},
		{"(live)", []string{"So What (Live)"}, []string{"live"}},
		{"c++", []string{"C++ Blues"}, []string{"cc"}},
		{"^start", []string{"a ^start"}, []string{"start"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			re := Contains(tt.input)
			compiled := regexp.MustCompile("(?i)" + re.Pattern)
			for _, s := range tt.matches {
				if !compiled.MatchString(s) {
					t.Errorf("pattern %q should match %q", re.Pattern, s)
				}
			}
			for _, s := range tt.rejects {
				if compiled.MatchString(s) {
					t.Errorf("pattern %q should not match %q", re.Pattern, s)
				}
			}
		})
	}
}

func TestFilterBuilder_Combined(t *testing.T) {
	year := 1959
	filter := NewFilterBuilder().
		AddContains("title", "kind").
		AddEquals("code", "KOB").
		AddInt("year", &year).
		Build()

	if len(filter) != 3 {
		t.Fatalf("len(Build()) = %d, want 3", len(filter))
	}
	if filter[1].Key != "code" || filter[1].Value != "KOB" {
		t.Errorf("code criterion = %v", filter[1])
	}
	if filter[2].Key != "year" || filter[2].Value != 1959 {
		t.Errorf("year criterion = %v", filter[2])
	}
}

func TestFilterBuilder_AddIn(t *testing.T) {
	t.Run("with ids", func(t *testing.T) {
		ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
		filter := NewFilterBuilder().AddIn("artists", ids).Build()

		in := filter[0].Value.(bson.D)
		if in[0].Key != "$in" {
			t.Fatalf("operator = %q, want $in", in[0].Key)
		}
		if got := in[0].Value.([]primitive.ObjectID); len(got) != 2 {
			t.Errorf("len($in) = %d, want 2", len(got))
		}
	})

	t.Run("nil ids become an empty array", func(t *testing.T) {
		filter := NewFilterBuilder().AddIn("album", nil).Build()

		raw, err := bson.Marshal(filter)
		if err != nil {
			t.Fatalf("bson.Marshal() error = %v", err)
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("bson.Unmarshal() error = %v", err)
		}
		in := doc["album"].(bson.M)["$in"]
		arr, ok := in.(bson.A)
		if !ok || len(arr) != 0 {
			t.Errorf("$in = %#v, want empty array", in)
		}
	})
}

func TestFilterBuilder_BuildCopies(t *testing.T) {
	fb := NewFilterBuilder().AddEquals("code", "A")
	first := fb.Build()
	fb.AddEquals("title", "B")

	if len(first) != 1 {
		t.Errorf("earlier Build() result changed: %v", first)
	}
}

func TestPipeline(t *testing.T) {
	t.Run("without filter", func(t *testing.T) {
		p := Pipeline(bson.D{}, 20, 10)
		if len(p) != 2 {
			t.Fatalf("len(Pipeline) = %d, want 2", len(p))
		}
		if p[0][0].Key != "$skip" || p[0][0].Value != int64(20) {
			t.Errorf("stage 0 = %v, want $skip 20", p[0])
		}
		if p[1][0].Key != "$limit" || p[1][0].Value != int64(10) {
			t.Errorf("stage 1 = %v, want $limit 10", p[1])
		}
	})

	t.Run("with filter", func(t *testing.T) {
		filter := NewFilterBuilder().AddContains("name", "jazz").Build()
		p := Pipeline(filter, 0, 5)
		if len(p) != 3 {
			t.Fatalf("len(Pipeline) = %d, want 3", len(p))
		}
		if p[0][0].Key != "$match" {
			t.Errorf("stage 0 = %v, want $match", p[0])
		}
		for _, stage := range p {
			if stage[0].Key == "$sort" {
				t.Error("pipeline must not sort")
			}
		}
	})
}

func TestProjection(t *testing.T) {
	proj := Projection("code", "title")
	if len(proj) != 2 || proj[0].Key != "code" || proj[1].Key != "title" {
		t.Errorf("Projection() = %v", proj)
	}
	if id := IDProjection(); len(id) != 1 || id[0].Key != "_id" {
		t.Errorf("IDProjection() = %v", id)
	}
}
