package main

import (
	"os"

	"github.com/achilleasa/raybench/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raybench"
	app.Usage = "progressive renderer session driver and benchmark"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "bench",
			Usage: "run the unattended multi-scene benchmark",
			Description: `
Cycle through the scene registry rendering each scene until it converges
under the sample ceiling or hits the per-scene time limit, reporting frame
rates at fixed intervals and a summary table at exit.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1280,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 720,
					Usage: "window height",
				},
				cli.BoolFlag{
					Name:  "fullscreen",
					Usage: "request a fullscreen window",
				},
				cli.IntFlag{
					Name:  "scene",
					Value: 0,
					Usage: "index of the first scene to benchmark",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 8,
					Usage: "sample budget per frame",
				},
				cli.IntFlag{
					Name:  "max-samples",
					Value: 65536,
					Usage: "total accumulated sample ceiling",
				},
				cli.IntFlag{
					Name:  "num-bounces",
					Value: 16,
					Usage: "number of indirect bounces",
				},
				cli.Float64Flag{
					Name:  "max-time",
					Value: 60,
					Usage: "per-scene time limit in seconds",
				},
				cli.BoolTFlag{
					Name:  "next-scenes",
					Usage: "advance through the remaining scenes after each limit",
				},
			},
			Action: cmd.RunBenchmark,
		},
		{
			Name:        "interactive",
			Usage:       "render an interactive progressive view of a scene",
			Description: ``,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1280,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 720,
					Usage: "window height",
				},
				cli.BoolFlag{
					Name:  "fullscreen",
					Usage: "request a fullscreen window",
				},
				cli.IntFlag{
					Name:  "scene",
					Value: 0,
					Usage: "scene index to load",
				},
				cli.BoolTFlag{
					Name:  "ray-traced",
					Usage: "start on the ray-traced path",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 8,
					Usage: "sample budget per frame",
				},
				cli.IntFlag{
					Name:  "max-samples",
					Value: 65536,
					Usage: "total accumulated sample ceiling",
				},
				cli.IntFlag{
					Name:  "num-bounces",
					Value: 16,
					Usage: "number of indirect bounces",
				},
			},
			Action: cmd.RenderInteractive,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scene registry",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
