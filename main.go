// Copyright 2024-2025 ApeCloud, Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/msavela/walstream/admin"
	"github.com/msavela/walstream/eventbus"
	"github.com/msavela/walstream/metrics"
	"github.com/msavela/walstream/proto"
	"github.com/msavela/walstream/replication"
	"github.com/msavela/walstream/session"
)

func main() {
	setupLogging()

	args := os.Args[1:]
	if len(args) >= 2 && args[0] == "--connection" {
		args = args[2:]
	}
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	connString := connectionString()

	var err error
	switch args[0] {
	case "start":
		err = runStart(connString, args[1:])
	case "list":
		err = runList(connString)
	case "delete":
		err = runDelete(connString, args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `walstream --connection <CONNSTR> start <PUBLICATION> <SLOT> [--temporary BOOL] [--host H] [--port P]
walstream --connection <CONNSTR> list
walstream --connection <CONNSTR> delete <SLOT>`)
}

func setupLogging() {
	level := os.Getenv("WALSTREAM_LOG")
	if level == "" {
		level = "info"
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// connectionString reads --connection from the raw argument list (it
// must be accepted before the subcommand, per the CLI contract) or
// falls back to the CONNECTION environment variable.
func connectionString() string {
	for i, arg := range os.Args {
		if arg == "--connection" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}
	return os.Getenv("CONNECTION")
}

func runStart(connString string, args []string) error {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	temporary := fs.Bool("temporary", envBool("TEMPORARY", true), "create the replication slot as temporary")
	host := fs.String("host", envOr("HOST", "0.0.0.0"), "address to bind the gRPC server to")
	port := fs.Int("port", envInt("PORT", 50051), "port to bind the gRPC server to")

	positional, flags := splitPositional(args)
	if err := fs.Parse(flags); err != nil {
		return err
	}
	if len(positional) < 2 {
		return fmt.Errorf("start requires <PUBLICATION> <SLOT>")
	}
	publication, slotName := positional[0], positional[1]

	if connString == "" {
		return fmt.Errorf("--connection or CONNECTION is required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	driver := replication.NewDriver(connString, bus)
	sessionServer := session.NewServer(bus)
	reg := metrics.NewRegistry()

	grpcServer := grpc.NewServer()
	proto.RegisterPluginServiceServer(grpcServer, sessionServer)

	addr := net.JoinHostPort(*host, strconv.Itoa(*port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	go driver.Start(ctx, publication, slotName, *temporary)
	go reg.Watch(ctx, bus)
	go func() {
		if err := metrics.Serve(ctx, ":9090", reg.Handler()); err != nil {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	log.Info().Str("addr", addr).Str("publication", publication).Str("slot", slotName).Msg("starting session server")
	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func runList(connString string) error {
	if connString == "" {
		return fmt.Errorf("--connection or CONNECTION is required")
	}
	slots, err := admin.List(context.Background(), connString)
	if err != nil {
		return err
	}
	for _, s := range slots {
		fmt.Printf("%s\t%v\t%s\t%v\t%v\t%v\t%v\t%v\t%v\n",
			s.SlotName, derefStr(s.Database), s.SlotType, s.Temporary, s.Active,
			derefStr(s.RestartLSN), derefStr(s.ConfirmedFlushLSN), derefStr(s.WALStatus), derefBool(s.Conflicting))
	}
	return nil
}

func runDelete(connString string, args []string) error {
	positional, _ := splitPositional(args)
	if len(positional) < 1 {
		return fmt.Errorf("delete requires <SLOT>")
	}
	if connString == "" {
		return fmt.Errorf("--connection or CONNECTION is required")
	}
	slotName := positional[0]
	dropped, err := admin.Delete(context.Background(), connString, slotName)
	if err != nil {
		return err
	}
	if dropped {
		fmt.Printf("Replication slot %q dropped\n", slotName)
	} else {
		fmt.Printf("Replication slot %q does not exist\n", slotName)
	}
	return nil
}

// splitPositional separates leading positional arguments from the
// remaining flag arguments. Subcommands here always take their
// positionals (publication/slot name) before any --flag.
func splitPositional(args []string) (positional, flags []string) {
	for i, a := range args {
		if len(a) > 1 && a[0] == '-' {
			return args[:i], args[i:]
		}
		positional = append(positional, a)
	}
	return positional, nil
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(name string, def bool) bool {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
