// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// ncnd runs the rewards ballot of a node consensus network and serves its API.
package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/ncn/api"
	"github.com/vechain/ncn/cmd/ncnd/httpserver"
	"github.com/vechain/ncn/log"
	"github.com/vechain/ncn/metrics"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/stake"
)

var (
	version       string
	gitCommit     string
	gitTag        string
	copyrightYear string

	logger = log.WithContext("pkg", "ncnd")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "ncnd",
		Usage:     "Rewards ballot of a node consensus network",
		Copyright: fmt.Sprintf("2026-%s VeChain Foundation <https://vechain.org/>", copyrightYear),
		Flags: []cli.Flag{
			configFlag,
			dataDirFlag,
			cacheFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiTimeoutFlag,
			apiSlowQueriesThresholdFlag,
			apiLog5xxErrorsFlag,
			enableAPILogsFlag,
			registryCacheFlag,
			verbosityFlag,
			jsonLogsFlag,
			enableMetricsFlag,
			metricsAddrFlag,
			enableAdminFlag,
			adminAddrFlag,
		},
		Action: defaultAction,
		Commands: []cli.Command{
			{
				Name:  "tree",
				Usage: "build the rewards tree of an entitlements file, and print its root with the claims",
				Flags: []cli.Flag{
					entitlementsFlag,
					outFlag,
				},
				Action: treeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()
	defer func() { logger.Info("exited") }()

	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	logLevel := initLogger(lvl, ctx.Bool(jsonLogsFlag.Name))

	path := ctx.String(configFlag.Name)
	if path == "" {
		cli.ShowAppHelp(ctx)
		return errors.Errorf("-%s is required", configFlag.Name)
	}
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	cfg, err := loadConfig(file)
	file.Close()
	if err != nil {
		return err
	}

	clock, err := cfg.Epoch.clock()
	if err != nil {
		return err
	}
	static, err := stake.NewStaticFromDocument(&cfg.Registry)
	if err != nil {
		return err
	}
	registry, err := stake.NewCached(static, ctx.Int(registryCacheFlag.Name))
	if err != nil {
		return err
	}

	instanceDir, err := makeInstanceDir(ctx.String(dataDirFlag.Name), &cfg.Network)
	if err != nil {
		return err
	}
	mainDB, err := openMainDB(instanceDir, ctx.Int(cacheFlag.Name))
	if err != nil {
		return err
	}
	defer func() { logger.Info("closing main database..."); mainDB.Close() }()

	n, err := network.New(mainDB, &cfg.Network, registry, clock)
	if err != nil {
		return err
	}

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return errors.Wrap(err, "start metrics server")
		}
		defer func() { logger.Info("stopping metrics server..."); closeFunc() }()
		logger.Info("metrics server started", "url", url)
	}

	apiLogs := &atomic.Bool{}
	apiLogs.Store(ctx.Bool(enableAPILogsFlag.Name))

	if ctx.Bool(enableAdminFlag.Name) {
		url, closeFunc, err := httpserver.StartAdminServer(ctx.String(adminAddrFlag.Name), logLevel, apiLogs)
		if err != nil {
			return errors.Wrap(err, "start admin server")
		}
		defer func() { logger.Info("stopping admin server..."); closeFunc() }()
		logger.Info("admin server started", "url", url)
	}

	handler := api.New(n, api.Options{
		AllowedOrigins:       ctx.String(apiCorsFlag.Name),
		EnableMetrics:        ctx.Bool(enableMetricsFlag.Name),
		EnableReqLogger:      apiLogs,
		SlowQueriesThreshold: time.Duration(ctx.Uint64(apiSlowQueriesThresholdFlag.Name)) * time.Millisecond,
		Log5xxErrors:         ctx.Bool(apiLog5xxErrorsFlag.Name),
	})
	apiURL, stopAPI, err := httpserver.StartAPIServer(
		ctx.String(apiAddrFlag.Name),
		handler,
		time.Duration(ctx.Uint64(apiTimeoutFlag.Name))*time.Millisecond,
	)
	if err != nil {
		return err
	}
	defer func() { logger.Info("stopping API server..."); stopAPI() }()

	printStartupMessage(n, &cfg.Network, instanceDir, apiURL)

	var goes sync.WaitGroup
	goes.Go(func() { watchEpochs(exitSignal, clock, time.Second) })
	defer goes.Wait()

	<-exitSignal.Done()
	return nil
}
