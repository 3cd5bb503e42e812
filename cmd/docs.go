package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// front matter for the root command's doc page
const rootDoc = `---
layout: default
title: %s
nav_order: 0
has_children: true
permalink: /
---
`

// front matter for a child command's doc page
const childDoc = `---
layout: default
title: %s
parent: plasmap
---
`

// docsCmd writes Markdown documentation pages for every command
var docsCmd = &cobra.Command{
	Use:    "docs [directory]",
	Short:  "Generate Markdown docs for the plasmap commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}

		if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
			fmt.Println(err.Error())
		}
	},
}

// filePrepender adds the YAML heading required by the docs theme
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "plasmap" {
		return fmt.Sprintf(rootDoc, base)
	}
	return fmt.Sprintf(childDoc, strings.TrimPrefix(base, "plasmap_"))
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "plasmap" {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
