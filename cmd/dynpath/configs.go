package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/dynpath/encode"
	"github.com/signadot/dynpath/format"
	"github.com/signadot/dynpath/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the input format for file, which is taken from its
// suffix unless set with flags.
func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(file))}
}

func (cfg *MainConfig) outFormat() format.Format {
	fmt := format.YAMLFormat
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	return fmt
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Default string `cli:"name=d aliases=default desc='value printed when the path does not resolve'"`
	Type    string `cli:"name=t aliases=type desc='coerce the result: string, bool, int, int64, float, float64, uuid, guid, list, strings, map'"`

	Get *cli.Command
}

type UnpackConfig struct {
	*MainConfig

	Diff bool `cli:"name=diff desc='print a line diff of the input and the result'"`

	Unpack *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Unpack bool `cli:"name=u desc='unpack path keys after patching'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type ConvConfig struct {
	*MainConfig

	Conv *cli.Command
}
