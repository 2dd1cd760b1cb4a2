// pawpalctl consulta la API del planner desde la terminal.
//
//	pawpalctl [-addr URL] [-date YYYY-MM-DD] agenda
//	pawpalctl [-addr URL] [-date YYYY-MM-DD] conflicts
//	pawpalctl [-addr URL] complete <owner> <pet> <taskID>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"pawpal-planner/internal/client"
	"pawpal-planner/internal/platform/datetime"
	"pawpal-planner/internal/platform/httpclient"
	"pawpal-planner/internal/platform/logger"
)

var errUsage = errors.New("usage: pawpalctl [-addr URL] [-date YYYY-MM-DD] agenda|conflicts|complete <owner> <pet> <taskID>")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pawpalctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	addr := fs.String("addr", envOr("PAWPAL_ADDR", "http://localhost:8080"), "URL base de la API")
	dateStr := fs.String("date", "", "fecha YYYY-MM-DD (default: hoy en el servidor)")
	timeout := fs.Duration("timeout", httpclient.DefaultTimeout, "timeout por request")
	verbose := fs.Bool("v", false, "loguea cada request")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	var date time.Time
	if strings.TrimSpace(*dateStr) != "" {
		d, err := datetime.ParseDate(*dateStr, time.Time{})
		if err != nil {
			return err
		}
		date = d
	}

	log := logger.Nop()
	if *verbose {
		log = logger.New(logger.Options{Level: logger.Debug, Out: stderr})
	}

	hc, err := httpclient.New(*addr, *timeout, log)
	if err != nil {
		return err
	}
	c := client.New(hc)

	switch cmd := fs.Arg(0); cmd {
	case "agenda":
		a, err := c.Agenda(ctx, date)
		if err != nil {
			return err
		}
		printAgenda(stdout, a)
	case "conflicts":
		cf, err := c.Conflicts(ctx, date)
		if err != nil {
			return err
		}
		printConflicts(stdout, cf)
	case "complete":
		if fs.NArg() != 4 {
			return errUsage
		}
		res, err := c.CompleteTask(ctx, fs.Arg(1), fs.Arg(2), fs.Arg(3))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "completed %s (%s)\n", res.Completed.Title, res.Completed.ID)
		if res.Next != nil {
			fmt.Fprintf(stdout, "next %s (%s) due %s\n", res.Next.Title, res.Next.ID, formatDue(res.Next.DueAt))
		}
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
	return nil
}

func printAgenda(w io.Writer, a *client.Agenda) {
	fmt.Fprintf(w, "Agenda %s\n", a.Date)
	if len(a.Tasks) == 0 {
		fmt.Fprintln(w, "  (no tasks)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DUE\tOWNER/PET\tTASK\tPRIORITY\tSTATUS")
	for _, t := range a.Tasks {
		fmt.Fprintf(tw, "%s\t%s/%s\t%s\t%d\t%s\n", formatDue(t.DueAt), t.Owner, t.Pet, t.Title, t.Priority, t.Status)
	}
	_ = tw.Flush()
}

func printConflicts(w io.Writer, cf *client.Conflicts) {
	fmt.Fprintf(w, "Conflicts %s: %d overlapping pair(s)\n", cf.Date, len(cf.Pairs))
	for _, p := range cf.Pairs {
		fmt.Fprintf(w, "  %s (%s) overlaps %s (%s)\n", p.First.Title, formatDue(p.First.DueAt), p.Second.Title, formatDue(p.Second.DueAt))
	}
	for _, warn := range cf.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warn)
	}
}

func formatDue(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(datetime.MinuteLayout)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
