package main

import (
	"bytes"
	"image/png"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/gbctile"
	"github.com/urfave/cli/v2"
)

const defaultWorkers = 4

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

type options struct {
	input   string
	output  string
	preview string
	binary  bool
}

// run converts a single image. Everything is rendered in memory first, the
// output is then written and the preview last, so a failure before that point
// leaves no files behind.
func run(logger *log.Logger, stdout io.Writer, opts options) error {
	r, err := gbctile.New(logger).ConvertFile(opts.input)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if opts.binary {
		p, err := r.MarshalBinary()
		if err != nil {
			return err
		}
		b.Write(p)
	} else {
		if _, err := r.WriteTo(b); err != nil {
			return err
		}
	}

	var preview *bytes.Buffer
	if opts.preview != "" {
		m, err := r.Image()
		if err != nil {
			return err
		}
		preview = new(bytes.Buffer)
		if err := png.Encode(preview, m); err != nil {
			return err
		}
	}

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	if preview != nil {
		return ioutil.WriteFile(opts.preview, preview.Bytes(), 0644)
	}

	return nil
}

func convert(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	if err := run(newLogger(c), os.Stdout, options{
		input:   c.Args().First(),
		output:  c.String("output"),
		preview: c.String("preview"),
		binary:  c.Bool("binary"),
	}); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "gbctile"
	app.Usage = "Game Boy Color background tile converter"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			EnvVars: []string{"GBCTILE_OUTPUT"},
			Usage:   "write to `FILE` instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "binary",
			Aliases: []string{"b"},
			Usage:   "write raw bytes instead of an assembler listing",
		},
		&cli.StringFlag{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "also render the converted image to `FILE` as PNG",
		},
	}

	app.Action = convert

	app.Commands = []*cli.Command{
		{
			Name:        "batch",
			Usage:       "Convert every image in a directory tree",
			Description: "Each image is converted to an assembler listing written alongside it with an .asm extension.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "workers",
					Aliases: []string{"w"},
					EnvVars: []string{"GBCTILE_WORKERS"},
					Value:   defaultWorkers,
					Usage:   "number of images to convert at once",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := gbctile.New(newLogger(c)).Batch(c.Args().First(), c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
