package main

import (
	"fmt"
	"testing"

	"word_dict/configure"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func parseOpts(t *testing.T, args ...string) {
	conf.Opts = conf.Options{}
	_, err := flags.ParseArgs(&conf.Opts, args)
	assert.Nil(t, err, "parse %v", args)
}

func TestCheckOpts(t *testing.T) {
	var nr int
	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-w", "words.txt", "-p", "patterns.txt")
		wildcard, err := checkOpts()
		assert.Nil(t, err, "should be nil")
		assert.Equal(t, '.', wildcard, "should be equal")
		assert.Equal(t, 256, conf.Opts.BatchCount, "should be equal")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-s", "127.0.0.1:6379", "--wildcard", "?")
		wildcard, err := checkOpts()
		assert.Nil(t, err, "should be nil")
		assert.Equal(t, '?', wildcard, "should be equal")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-p", "patterns.txt")
		_, err := checkOpts()
		assert.NotNil(t, err, "should not be nil")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-w", "words.txt", "--batchcount", "0")
		_, err := checkOpts()
		assert.NotNil(t, err, "should not be nil")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-w", "words.txt", "--wildcard", "..")
		_, err := checkOpts()
		assert.NotNil(t, err, "should not be nil")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-w", "words.txt", "--sourceauthtype", "token")
		_, err := checkOpts()
		assert.NotNil(t, err, "should not be nil")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		parseOpts(t, "-w", "words.txt", "-p", "same.txt", "--result", "same.txt")
		_, err := checkOpts()
		assert.NotNil(t, err, "should not be nil")
	}

	{
		nr++
		fmt.Printf("TestCheckOpts case %d.\n", nr)

		// replay needs no other input
		parseOpts(t, "--ops", "ops.json")
		_, err := checkOpts()
		assert.Nil(t, err, "should be nil")
	}
}
