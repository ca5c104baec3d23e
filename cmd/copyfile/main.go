// main.go - command line driver for single-entry copies
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"os"
	"path"
	"runtime"

	copyfile "github.com/opencoff/go-copyfile"
	"github.com/opencoff/go-logger"
	"github.com/opencoff/go-utils"
	flag "github.com/opencoff/pflag"
)

var Z = path.Base(os.Args[0])

type work struct {
	src string
	dst string
}

func main() {
	var help, verify bool
	var flagStr, logfile string
	var ncpu int

	fs := flag.NewFlagSet(Z, flag.ExitOnError)

	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.StringVarP(&flagStr, "flags", "f", "data,stat", "Copy with flags `F,F..` [data,stat]")
	fs.BoolVarP(&verify, "verify", "V", false, "Verify destination contents after copying [False]")
	fs.StringVarP(&logfile, "log", "L", "STDOUT", "Log to `FILE` [STDOUT]")
	fs.IntVarP(&ncpu, "concurrency", "c", runtime.NumCPU(), "Use upto `N` concurrent copies")

	fs.SetOutput(os.Stdout)

	err := fs.Parse(os.Args[1:])
	if err != nil {
		Die("%s", err)
	}

	if help {
		usage(fs)
	}

	args := fs.Args()
	if len(args) < 2 {
		Die("Usage: %s [options] src [src...] dst", Z)
	}

	cflags, err := copyfile.ParseFlags(flagStr)
	if err != nil {
		Die("%s", err)
	}

	log, err := logger.NewLogger(logfile, logger.LOG_INFO, Z, logger.Ldate|logger.Ltime)
	if err != nil {
		Die("can't create logger: %s", err)
	}

	// resolve debug verbosity once, at startup
	debug := copyfile.DebugFromEnv()

	srcs := args[:len(args)-1]
	dst := args[len(args)-1]

	dstdir := isdir(dst)
	if len(srcs) > 1 && !dstdir {
		Die("%s: destination must be a directory when copying multiple entries", dst)
	}

	results := copyfile.NewPairMap()

	wp := copyfile.NewWorkPool[work](ncpu, func(_ int, w work) error {
		st := copyfile.NewState()
		defer st.Close()

		st.SetLogger(log)
		st.SetDebug(debug)

		if err := copyfile.Copy(w.dst, w.src, st, cflags); err != nil {
			return err
		}

		si := st.SourceInfo()
		di, err := copyfile.Stat(w.dst)
		if err != nil {
			return fmt.Errorf("%s: %w", w.dst, err)
		}
		results.Store(w.dst, copyfile.Pair{Src: si, Dst: di})
		return nil
	})

	for _, src := range srcs {
		d := dst
		if dstdir {
			d = path.Join(dst, path.Base(src))
		}
		wp.Submit(work{src: src, dst: d})
	}
	wp.Close()

	if err = wp.Wait(); err != nil {
		Die("%s", err)
	}

	var total uint64
	var nent int
	var verr error

	results.Range(func(d string, p copyfile.Pair) bool {
		nent++
		total += uint64(p.Src.Siz)
		if verify && p.Src.Mode().IsRegular() && cflags&copyfile.DATA != 0 {
			if err := verifyCopy(p.Src.Nam, d); err != nil {
				verr = err
				return false
			}
			log.Debug("%s: verified ok", d)
		}
		return true
	})

	if verr != nil {
		Die("%s", verr)
	}

	log.Info("copied %d entries, %s", nent, utils.HumanizeSize(total))
}

func isdir(nm string) bool {
	st, err := os.Stat(nm)
	return err == nil && st.IsDir()
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, Z, Z)
	fs.PrintDefaults()
	os.Exit(1)
}

var usageStr = `%s - copy single file system entries with optional metadata.

Each source is copied to the destination (or into it, if the
destination is a directory), one copy state per entry. Flag names:
data, stat, xattr, acl, security, excl, unlink, nofollow_src,
nofollow_dst, debug and the composites metadata, nofollow, all.

The COPYFILE_DEBUG environment variable sets the debug verbosity.

Usage: %s [options] src [src...] dst

Options:
`
