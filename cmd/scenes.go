package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/raybench/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scene registry.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	source := scene.NewListSource()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Index", "Name", "Models", "Textures", "Sky"})

	for index := 0; index < source.Count(); index++ {
		sc, initial, err := source.LoadScene(index)
		if err != nil {
			return err
		}
		table.Append([]string{
			fmt.Sprintf("%d", index),
			source.Name(index),
			fmt.Sprintf("%d", len(sc.Models)),
			fmt.Sprintf("%d", len(sc.Textures)),
			fmt.Sprintf("%t", initial.HasSky),
		})
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
