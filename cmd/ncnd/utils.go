// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/elastic/gosigar"
	"github.com/ethereum/go-ethereum/common/fdlimit"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/vechain/ncn/epoch"
	"github.com/vechain/ncn/log"
	"github.com/vechain/ncn/lvldb"
	"github.com/vechain/ncn/network"
)

func initLogger(lvl int, jsonLogs bool) *slog.LevelVar {
	logLevel := log.FromLegacyLevel(lvl)
	output := io.Writer(os.Stdout)

	var level slog.LevelVar
	level.Set(logLevel)

	var handler slog.Handler
	if jsonLogs {
		handler = log.JSONHandlerWithLevel(output, &level)
	} else {
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor {
			output = os.Stderr
		}
		handler = log.NewTerminalHandlerWithLevel(output, &level, useColor)
	}
	log.SetDefault(log.NewLogger(handler))
	return &level
}

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, fmt.Errorf("flag value %d is too large", val)
	}
	return int(val), nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func defaultDataDir() string {
	if home := homeDir(); home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, "Library", "Application Support", "io.vechain.ncn")
		}
		return filepath.Join(home, ".org.vechain.ncn")
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// makeInstanceDir returns the directory holding the data of the configured network.
func makeInstanceDir(dataDir string, cfg *network.Config) (string, error) {
	if dataDir == "" {
		return "", errors.Errorf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name)
	}
	instanceDir := filepath.Join(dataDir, fmt.Sprintf("instance-%x", cfg.ID.Bytes()[12:]))
	if err := os.MkdirAll(instanceDir, 0o700); err != nil {
		return "", errors.Wrapf(err, "create data dir [%v]", instanceDir)
	}
	return instanceDir, nil
}

func openMainDB(instanceDir string, cacheMB int) (*lvldb.LevelDB, error) {
	cacheMB = normalizeCacheSize(cacheMB)
	logger.Debug("cache size(MB)", "size", cacheMB)

	fdCache := suggestFDCache()
	logger.Debug("fd cache", "n", fdCache)

	dir := filepath.Join(instanceDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              cacheMB,
		OpenFilesCacheCapacity: fdCache,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open main database [%v]", dir)
	}
	return db, nil
}

func normalizeCacheSize(sizeMB int) int {
	if sizeMB < 16 {
		sizeMB = 16
	}

	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		logger.Warn("failed to get total mem:", "err", err)
	} else {
		// limit to 1/4 os physical ram
		limitMB := int(mem.Total / 1024 / 1024 / 4)
		if sizeMB > limitMB {
			sizeMB = limitMB
			logger.Warn("cache size(MB) limited", "limit", limitMB)
		}
	}
	return sizeMB
}

func suggestFDCache() int {
	limit, err := fdlimit.Current()
	if err != nil {
		logger.Warn("failed to get fd limit", "err", err)
		return 16
	}
	if limit <= 1024 {
		logger.Warn("low fd limit, increase it if possible", "limit", limit)
	}

	n := limit / 2
	if n > 5120 {
		return 5120
	}
	return n
}

// watchEpochs logs each epoch as the clock enters it.
func watchEpochs(ctx context.Context, clock epoch.Clock, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := clock.Current()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if cur := clock.Current(); cur != last {
				logger.Info("entered epoch", "epoch", cur, "previous", last)
				last = cur
			}
		}
	}
}

func printStartupMessage(
	n *network.Network,
	cfg *network.Config,
	instanceDir string,
	apiURL string,
) {
	fmt.Printf(`Starting %v
    Network      [ %v ]
    Root mode    [ %v ]
    Epoch        [ %v ]
    Authority    [ %v ]
    Instance dir [ %v ]
    API portal   [ %v ]
`,
		"NCN "+fullVersion(),
		cfg.ID,
		cfg.RootMode,
		n.Epoch(),
		cfg.Authority,
		instanceDir,
		apiURL)
}
