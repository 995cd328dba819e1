// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// contentTmpl is the Hugo Blox publication entry: a fixed +++ front
// matter block followed by the summary body. Keywords arrive already
// comma-separated with multi-word entries quoted, so they drop straight
// into the tags list.
var contentTmpl = template.Must(template.New("index").Parse(`+++
title = "{{.Title}}"
date = "{{.Date}}"
authors = ["{{.Author}}"]
tags = [{{.Keywords}}]
publication_types = ["thesis"]
publication = "_Cyprus University of Technology_"
publication_short = ""
abstract = ""
summary = ""
featured = false
projects = []
slides = ""
url_code = ""
url_dataset = ""
url_poster = ""
url_slides = ""
url_source = ""
url_video = ""
math = true
highlight = true
[image]
image = ""
caption = ""
+++

{{.Summary}}`))

// contentView is the data fed to contentTmpl.
type contentView struct {
	Title    string
	Date     string
	Author   string
	Keywords string
	Summary  string
}

// renderContent fills the content template. The publication date is the
// first of June of the defence year.
func renderContent(fields types.Fields, year string) string {
	view := contentView{
		Title:    fields.Title,
		Date:     year + "-06-01",
		Author:   fields.Author,
		Keywords: fields.Keywords,
		Summary:  fields.Summary,
	}
	var buf bytes.Buffer
	// The template only substitutes strings; execution cannot fail.
	_ = contentTmpl.Execute(&buf, view)
	return buf.String()
}
