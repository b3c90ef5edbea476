package classmap_test

import "github.com/hupe1980/classmap/schema"

func mustDocument() *schema.Document {
	return &schema.Document{
		Version: schema.CurrentVersion,
		Classes: []schema.ClassDef{{
			Name: "Point",
			Members: []schema.MemberDef{
				{Name: "x", Kind: "float"},
				{Name: "y", Kind: "float"},
			},
		}},
	}
}
