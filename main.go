package main

import (
	"fmt"
	"os"
	"strings"

	"word_dict/client"
	"word_dict/common"
	"word_dict/configure"
	"word_dict/runner"

	"github.com/jessevdk/go-flags"
)

var VERSION = "$"

func main() {
	// parse conf.Opts
	args, err := flags.Parse(&conf.Opts)

	if conf.Opts.Version {
		fmt.Println(VERSION)
		os.Exit(0)
	}

	// flags already printed the error to stderr
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unexpected args %+v\n", args)
		os.Exit(1)
	}

	// init log
	common.Logger, err = common.InitLog(conf.Opts.LogFile, conf.Opts.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init log failed: ", err)
		os.Exit(1)
	}
	common.Logger.Info("init log success")
	defer common.Logger.Flush()

	wildcard, err := checkOpts()
	if err != nil {
		panic(common.Logger.Error(err))
	}

	if conf.Opts.OpsFile != "" {
		if err := replay(conf.Opts.OpsFile, wildcard); err != nil {
			panic(common.Logger.Error(err))
		}
		return
	}

	// filter list
	filter, err := common.NewKeyFilter(conf.Opts.FilterList)
	if err != nil {
		panic(common.Logger.Error(err))
	}
	if !filter.Empty() {
		common.Logger.Infof("filter list enabled: %v", filter.List())
	}

	param := runner.Parameter{
		WordFiles:    conf.Opts.WordFile,
		PatternFiles: conf.Opts.PatternFile,
		SourceDB:     int32(conf.Opts.SourceDB),
		BatchCount:   conf.Opts.BatchCount,
		Qps:          conf.Opts.Qps,
		Filter:       filter,
		Wildcard:     wildcard,
		Strict:       conf.Opts.Strict,
		ResultDBFile: conf.Opts.ResultDBFile,
		ResultFile:   conf.Opts.ResultFile,
		Interval:     conf.Opts.Interval,
		MetricPrint:  conf.Opts.MetricPrint,
	}
	if conf.Opts.SourceAddr != "" {
		param.SourceHost = client.RedisHost{
			Addr:      strings.Split(conf.Opts.SourceAddr, common.Splitter),
			Password:  conf.Opts.SourcePassword,
			TimeoutMs: conf.Opts.SourceTimeout,
			Role:      "source",
			Authtype:  conf.Opts.SourceAuthType,
		}
	}

	if err := runner.NewRunner(param).Start(); err != nil {
		panic(common.Logger.Error(err))
	}
}

// checkOpts validates conf.Opts and returns the wildcard rune.
func checkOpts() (rune, error) {
	wildcard, err := common.ParseWildcard(conf.Opts.Wildcard)
	if err != nil {
		return 0, err
	}
	if conf.Opts.OpsFile != "" {
		return wildcard, nil
	}

	if len(conf.Opts.WordFile) == 0 && conf.Opts.SourceAddr == "" {
		return 0, fmt.Errorf("-w, --words or -s, --source not specified")
	}
	if conf.Opts.BatchCount < 1 || conf.Opts.BatchCount > 10000 {
		return 0, fmt.Errorf("invalid option batchcount %d, expect int 1<=batchcount<=10000", conf.Opts.BatchCount)
	}
	if conf.Opts.Qps < 1 || conf.Opts.Qps > 5000000 {
		return 0, fmt.Errorf("invalid option qps %d, expect 1<=qps<=5000000", conf.Opts.Qps)
	}
	if conf.Opts.Interval < 0 {
		return 0, fmt.Errorf("invalid option interval %d, expect int >=0", conf.Opts.Interval)
	}
	if conf.Opts.SourceDB < 0 {
		return 0, fmt.Errorf("invalid option sourcedb %d, expect int >=0", conf.Opts.SourceDB)
	}
	if conf.Opts.SourceAuthType != "auth" && conf.Opts.SourceAuthType != "adminauth" {
		return 0, fmt.Errorf("invalid sourceauthtype %s, expect auth/adminauth", conf.Opts.SourceAuthType)
	}
	for _, file := range conf.Opts.PatternFile {
		if file == conf.Opts.ResultFile {
			return 0, fmt.Errorf("result file %s is also a pattern file", file)
		}
	}
	return wildcard, nil
}

func replay(file string, wildcard rune) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open ops file[%v] failed[%v]", file, err)
	}
	defer f.Close()
	return runner.Replay(f, os.Stdout, wildcard)
}
