// cmd/net.go

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotkit/dotkit/pkg/kit_cli"
	"github.com/dotkit/dotkit/pkg/kit_err"
	"github.com/dotkit/dotkit/pkg/kit_io"
	"github.com/dotkit/dotkit/pkg/netdiag"
)

// netCmd groups the quick network diagnostics the bundle shipped as
// one-line wrappers around dig and openssl.
var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Quick network diagnostics",
}

var netDNSCmd = &cobra.Command{
	Use:   "dns NAME",
	Short: "Resolve a hostname (dig shortcut)",
	Args:  cobra.ExactArgs(1),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		addrs, cname, err := netdiag.Lookup(rc.Ctx, args[0])
		if err != nil {
			return kit_err.NewExpectedError(rc.Ctx, err)
		}
		if cname != "" {
			fmt.Printf("%s is an alias for %s\n", args[0], cname)
		}
		for _, addr := range addrs {
			fmt.Println(addr)
		}
		return nil
	}),
}

var netIPCmd = &cobra.Command{
	Use:   "ip",
	Short: "Print the external IP address",
	Args:  cobra.NoArgs,
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		ip, err := netdiag.ExternalIP(rc.Ctx)
		if err != nil {
			return err
		}
		fmt.Println(ip)
		return nil
	}),
}

var netPortCmd = &cobra.Command{
	Use:   "port HOST PORT",
	Short: "Check whether a TCP port is reachable",
	Args:  cobra.ExactArgs(2),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		port, err := strconv.Atoi(args[1])
		if err != nil || port < 1 || port > 65535 {
			return kit_err.NewExpectedErrorf(rc.Ctx, "invalid port %q", args[1])
		}
		if !netdiag.PortOpen(rc.Ctx, args[0], port) {
			return kit_err.NewExpectedErrorf(rc.Ctx, "%s:%d is not reachable", args[0], port)
		}
		fmt.Printf("%s:%d is open\n", args[0], port)
		return nil
	}),
}

var netCertCmd = &cobra.Command{
	Use:   "cert HOST[:PORT]",
	Short: "Summarize the TLS certificate served by a host",
	Args:  cobra.ExactArgs(1),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		info, err := netdiag.Cert(rc.Ctx, args[0])
		if err != nil {
			return kit_err.NewExpectedError(rc.Ctx, err)
		}
		fmt.Printf("subject: %s\n", info.Subject)
		fmt.Printf("issuer:  %s\n", info.Issuer)
		fmt.Printf("expires: %s (%d days)\n", info.NotAfter.Format("2006-01-02"), info.DaysLeft)
		return nil
	}),
}

func init() {
	netCmd.AddCommand(netDNSCmd, netIPCmd, netPortCmd, netCertCmd)
}
