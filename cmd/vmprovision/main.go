package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	utillog "github.com/Azure/VMProvision-RP/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), "usage: \n")
	fmt.Fprintf(flag.CommandLine.Output(), "       %s create {vm_spec_file_path}\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s get {vm_name_or_resource_id}\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	log := utillog.GetLogger()

	log.Printf("starting, git commit %s", gitCommit)

	var err error
	switch strings.ToLower(flag.Arg(0)) {
	case "create":
		checkArgs(2)
		err = create(ctx, log)
	case "get":
		checkArgs(2)
		err = get(ctx, log)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func checkArgs(required int) {
	if len(flag.Args()) != required {
		usage()
		os.Exit(2)
	}
}
