package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebamiro/atoll"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to a TOML config file")
		clusterArg    = flag.String("cluster", "devnet", "localnet, devnet, testnet or mainnet-beta")
		methodArg     = flag.String("method", "getBlockHeight", "getAccountInfo, getBalance, getBlock or getBlockHeight")
		pubKey        = flag.String("pubkey", "", "account public key (getAccountInfo, getBalance)")
		slot          = flag.Uint64("slot", 0, "slot number (getBlock)")
		commitmentArg = flag.String("commitment", "finalized", "processed, confirmed or finalized")
		encodingArg   = flag.String("encoding", "base64", "base58 or base64 (getAccountInfo)")
		verbose       = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)

	client, err := buildClient(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration")
	}
	client.Logger = &logger

	cluster, err := atoll.ParseCluster(*clusterArg)
	if err != nil {
		logger.Fatal().Err(err).Msg("cluster")
	}
	commitment := atoll.ParseCommitment(*commitmentArg)
	if commitment == atoll.InvalidCommitment {
		logger.Fatal().Str("commitment", *commitmentArg).Msg("invalid commitment level")
	}

	ctx := context.Background()

	var result any
	switch *methodArg {
	case "getAccountInfo":
		encoding := atoll.ParseEncoding(*encodingArg)
		if encoding == atoll.UnsupportedEncoding {
			logger.Fatal().Str("encoding", *encodingArg).Msg("unsupported encoding")
		}
		resp, err := client.GetAccountInfo(ctx, cluster, *pubKey, commitment, encoding)
		result = unwrap(logger, resp, err)
	case "getBalance":
		resp, err := client.GetBalance(ctx, cluster, *pubKey, commitment)
		result = unwrap(logger, resp, err)
	case "getBlock":
		resp, err := client.GetBlock(ctx, cluster, *slot, commitment)
		result = unwrap(logger, resp, err)
	case "getBlockHeight":
		resp, err := client.GetBlockHeight(ctx, cluster, commitment)
		result = unwrap(logger, resp, err)
	default:
		logger.Fatal().Str("method", *methodArg).Msg("unknown method")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("render result")
	}
	fmt.Println(string(out))
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "atoll").Logger()
}

func buildClient(configPath string) (*atoll.Client, error) {
	if configPath == "" {
		return &atoll.Client{}, nil
	}
	cfg, err := atoll.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return cfg.Client()
}

// unwrap exits with a diagnostic on any terminal failure and returns the
// decoded result otherwise.
func unwrap[T any](logger zerolog.Logger, resp *atoll.HTTPResponse[T], err error) T {
	if err != nil {
		var httpErr *atoll.HTTPError
		var decodeErr *atoll.DecodeError
		switch {
		case errors.As(err, &httpErr):
			logger.Fatal().Stringer("kind", httpErr.Kind).Str("detail", httpErr.Detail).Msg("transport failure")
		case errors.As(err, &decodeErr):
			logger.Fatal().Str("path", decodeErr.Path).Str("msg", decodeErr.Msg).Msg("undecodable response")
		default:
			logger.Fatal().Err(err).Msg("call failed")
		}
	}
	if !resp.Body.Ok() {
		detail := resp.Body.InvalidJSON.Err
		logger.Fatal().Int64("code", detail.Code).Str("message", detail.Message).Msg("node rejected the call")
	}
	return resp.Body.Success.Result
}
