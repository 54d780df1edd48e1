// Command b2bsum prints the BLAKE2b digest of each file named on the command
// line, one "<hex>  <path>" line per file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/libblake2/blake2b"
	"github.com/libblake2/blake2b/hexenc"
)

var (
	lengthFlag = &cli.IntFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "digest length in bytes (1-64)",
		Value:   blake2b.Size,
	}
	saltFlag = &cli.StringFlag{
		Name:  "salt",
		Usage: "salt as hex, at most 16 bytes",
	}
	personalFlag = &cli.StringFlag{
		Name:  "personal",
		Usage: "personalization as hex, at most 16 bytes",
	}
	upperFlag = &cli.BoolFlag{
		Name:  "upper",
		Usage: "print digests in uppercase hex",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log per-file details",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "b2bsum",
		Usage:     "print BLAKE2b digests of files",
		ArgsUsage: "<file> [<file> ...]",
		Flags: []cli.Flag{
			lengthFlag,
			saltFlag,
			personalFlag,
			upperFlag,
			verboseFlag,
		},
		Action: run,
	}
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Bool(verboseFlag.Name) {
		logrus.SetLevel(logrus.DebugLevel)
	}

	h, err := newHasher(ctx)
	if err != nil {
		return err
	}

	if failed := sumFiles(h, ctx.Args().Slice(), ctx.App.Writer, ctx.Bool(upperFlag.Name)); failed > 0 {
		return cli.Exit(fmt.Sprintf("b2bsum: %d file(s) could not be hashed", failed), 1)
	}
	return nil
}

func newHasher(ctx *cli.Context) (*blake2b.Hasher, error) {
	salt, err := hexenc.DecodeAny(ctx.String(saltFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "invalid --salt")
	}
	personal, err := hexenc.DecodeAny(ctx.String(personalFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "invalid --personal")
	}

	h, err := blake2b.New(ctx.Int(lengthFlag.Name), 0, salt, personal)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return h, nil
}

// sumFiles writes a digest line for every path it can hash and logs the
// rest. It returns how many paths failed.
func sumFiles(h *blake2b.Hasher, paths []string, w io.Writer, upper bool) (failed int) {
	encode := hexenc.Encode
	if upper {
		encode = hexenc.EncodeUpper
	}

	for _, path := range paths {
		log := logrus.WithField("file", path)

		sum, err := sumFile(h, path)
		if err != nil {
			log.WithError(err).Warn("could not hash file")
			failed++
			continue
		}

		log.WithField("digest_len", len(sum)).Debug("hashed")
		fmt.Fprintf(w, "%s  %s\n", encode(sum), path)
	}

	return failed
}
