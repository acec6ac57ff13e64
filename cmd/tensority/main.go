package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bytom/tensority/common/hexutil"
	cfg "github.com/bytom/tensority/config"
	"github.com/bytom/tensority/mining/tensority"
	"github.com/bytom/tensority/protocol/bc"
)

var (
	configFile string
	headerHex  string
	seedHex    string
	benchRuns  int
)

var rootCmd = &cobra.Command{
	Use:   "tensority",
	Short: "Tensority proof-of-work hash tool",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config := cfg.Load(configFile)
		tensority.AIHash = tensority.NewCacheCapacity(config.CacheCapacity)
		tensority.UseSIMD = config.Simd.Enable
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute the tensority digest of a block header hash and an epoch seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		header, err := decodeHash(headerHex)
		if err != nil {
			return fmt.Errorf("invalid header: %v", err)
		}
		seed, err := decodeHash(seedHex)
		if err != nil {
			return fmt.Errorf("invalid seed: %v", err)
		}

		start := time.Now()
		result := tensority.Hash(header, seed)
		log.WithFields(log.Fields{"duration": time.Since(start)}).Info("tensority hash done")

		fmt.Println(hexutil.Encode(result.Bytes()))
		return nil
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated evaluations against a warm seed cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := decodeHash(seedHex)
		if err != nil {
			return fmt.Errorf("invalid seed: %v", err)
		}

		// First call pays the matrix list derivation; time it apart.
		var b32 [32]byte
		header := bc.NewHash(b32)
		start := time.Now()
		tensority.Hash(&header, seed)
		log.WithFields(log.Fields{"duration": time.Since(start)}).Info("matrix list derived")

		start = time.Now()
		for i := 0; i < benchRuns; i++ {
			b32[0] = byte(i)
			b32[1] = byte(i >> 8)
			header = bc.NewHash(b32)
			tensority.Hash(&header, seed)
		}
		elapsed := time.Since(start)
		fmt.Printf("%d hashes in %v (%v per hash)\n", benchRuns, elapsed, elapsed/time.Duration(benchRuns))
		return nil
	},
}

func decodeHash(s string) (*bc.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("want 32 bytes, got %d", len(b))
	}
	var b32 [32]byte
	copy(b32[:], b)
	hash := bc.NewHash(b32)
	return &hash, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "tensority.toml", "path of the TOML config file")
	hashCmd.Flags().StringVar(&headerHex, "header", "0x0000000000000000000000000000000000000000000000000000000000000000", "block header hash, 0x-prefixed hex")
	hashCmd.Flags().StringVar(&seedHex, "seed", "0x0000000000000000000000000000000000000000000000000000000000000000", "epoch seed, 0x-prefixed hex")
	benchCmd.Flags().StringVar(&seedHex, "seed", "0x0000000000000000000000000000000000000000000000000000000000000000", "epoch seed, 0x-prefixed hex")
	benchCmd.Flags().IntVarP(&benchRuns, "count", "n", 16, "number of evaluations")
	rootCmd.AddCommand(hashCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
