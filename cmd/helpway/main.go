// cmd/helpway/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	g "github.com/helpway/helpway-core/internal/adapters/grpc"
	"github.com/helpway/helpway-core/internal/domain"
)

const usage = `Usage: helpway [-addr host:port] [-token-file path] <command> [flags]

Commands:
  login     -email <email> [-password <password>]
  logout
  restore
  campaigns [-q text] [-types Dinheiro,Alimentação] [-lat n -lon n] [-tier REGIONAL|NACIONAL|MUNDIAL] [-radius km]
  nearby    -lat n -lon n
  history   [-name text] [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-campaign id]
  donate    -campaign <id> -amount <value>
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".helpway-token"
	}
	return filepath.Join(home, ".helpway-token")
}

type cli struct {
	client    *g.Client
	tokenFile string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("helpway", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	addr := fs.String("addr", "localhost:50051", "gRPC server address")
	tokenFile := fs.String("token-file", defaultTokenFile(), "Where the access token is kept between runs")
	timeout := fs.Duration("timeout", 30*time.Second, "Per-command timeout")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("missing command")
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := &cli{client: g.NewClient(conn), tokenFile: *tokenFile, stdin: stdin, stdout: stdout, stderr: stderr}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "login":
		return c.login(ctx, rest)
	case "logout":
		return c.logout(ctx)
	case "restore":
		return c.restore(ctx)
	case "campaigns":
		return c.campaigns(ctx, rest)
	case "nearby":
		return c.nearby(ctx, rest)
	case "history":
		return c.history(ctx, rest)
	case "donate":
		return c.donate(ctx, rest)
	}
	fmt.Fprint(stdout, usage)
	return fmt.Errorf("unknown command %q", cmd)
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *cli) token() string {
	b, err := os.ReadFile(c.tokenFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (c *cli) saveToken(token string) error {
	if token == "" {
		return nil
	}
	return os.WriteFile(c.tokenFile, []byte(token+"\n"), 0o600)
}

func (c *cli) authed(ctx context.Context) context.Context {
	return g.WithToken(ctx, c.token())
}

// check turns an error envelope into an error carrying the user-facing message.
func check(e g.Envelope) error {
	if e.OK() {
		return nil
	}
	return fmt.Errorf("%s (code %d)", e.Message, e.Code)
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := c.flags("login")
	email := fs.String("email", "", "Account email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("missing required flags: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(c.stdout, "Password: ")
		var err error
		password, err = readPassword(c.stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(c.stdout)
	}

	resp, err := c.client.Login(ctx, &g.LoginRequest{Email: *email, Password: password})
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	if err := c.saveToken(resp.AccessToken); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	fmt.Fprintf(c.stdout, "Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	resp, err := c.client.Logout(c.authed(ctx))
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	if err := os.Remove(c.tokenFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	fmt.Fprintln(c.stdout, "Logged out")
	return nil
}

func (c *cli) restore(ctx context.Context) error {
	resp, err := c.client.Restore(ctx)
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	switch {
	case !resp.Active:
		fmt.Fprintln(c.stdout, "No stored session")
	case resp.Biometrics:
		fmt.Fprintln(c.stdout, "Stored session found, unlock available")
	default:
		fmt.Fprintln(c.stdout, "Stored session found, log in to continue")
	}
	return nil
}

// origin reads -lat/-lon; both zero means unknown.
func origin(lat, lon float64) *domain.Coordinate {
	o := domain.Coordinate{Latitude: lat, Longitude: lon}
	if !o.Valid() {
		return nil
	}
	return &o
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *cli) campaigns(ctx context.Context, args []string) error {
	fs := c.flags("campaigns")
	text := fs.String("q", "", "Text to match in title or subtitle")
	types := fs.String("types", "", "Comma separated donation types")
	lat := fs.Float64("lat", 0, "Current latitude")
	lon := fs.Float64("lon", 0, "Current longitude")
	tier := fs.String("tier", "", "Radius tier")
	radius := fs.Float64("radius", 0, "Free radius in km")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.client.SearchCampaigns(ctx, &g.SearchCampaignsRequest{
		Text:     *text,
		Types:    splitList(*types),
		Origin:   origin(*lat, *lon),
		Tier:     *tier,
		RadiusKm: *radius,
	})
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "%d campaigns within %.0f km\n", len(resp.Cards), resp.RadiusKm)
	for _, card := range resp.Cards {
		tags := make([]string, 0, len(card.Tags))
		for _, t := range card.Tags {
			tags = append(tags, string(t))
		}
		fmt.Fprintf(c.stdout, "[%s] %s - %d%% [%s]\n", card.Campaign.ID, card.Campaign.Title, card.ProgressPercent, strings.Join(tags, ", "))
	}
	return nil
}

func (c *cli) nearby(ctx context.Context, args []string) error {
	fs := c.flags("nearby")
	lat := fs.Float64("lat", 0, "Current latitude")
	lon := fs.Float64("lon", 0, "Current longitude")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := c.client.NearbyCampaigns(ctx, &g.NearbyRequest{Origin: domain.Coordinate{Latitude: *lat, Longitude: *lon}})
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	for _, n := range resp.Campaigns {
		fmt.Fprintf(c.stdout, "%8.1f km  [%s] %s\n", n.DistanceKm, n.Campaign.ID, n.Campaign.Title)
	}
	return nil
}

func (c *cli) history(ctx context.Context, args []string) error {
	fs := c.flags("history")
	name := fs.String("name", "", "Name to match")
	from := fs.String("from", "", "First day, YYYY-MM-DD")
	to := fs.String("to", "", "Last day, YYYY-MM-DD")
	campaign := fs.String("campaign", "", "Campaign id (organizers)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := c.client.History(c.authed(ctx), &g.HistoryRequest{Name: *name, DateFrom: *from, DateTo: *to, CampaignID: *campaign})
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	if len(resp.Records) == 0 {
		fmt.Fprintln(c.stdout, "Nenhuma doação encontrada")
		return nil
	}
	for _, r := range resp.Records {
		who := r.DonorName
		if r.Perspective == domain.PerspectiveMade {
			who = r.CampaignTitle
		}
		fmt.Fprintf(c.stdout, "%s  R$ %.2f  %s\n", r.Date, r.Amount, who)
	}
	return nil
}

func (c *cli) donate(ctx context.Context, args []string) error {
	fs := c.flags("donate")
	campaign := fs.String("campaign", "", "Campaign id")
	amount := fs.String("amount", "", "Amount in BRL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *campaign == "" || *amount == "" {
		return fmt.Errorf("missing required flags: campaign, amount")
	}

	authed := c.authed(ctx)
	pix, err := c.client.Pix(authed, &g.CampaignRequest{ID: *campaign})
	if err != nil {
		return err
	}
	if err := check(pix.Envelope); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Chave PIX de %s: %s\n", pix.Pix.CampaignTitle, pix.Pix.PixKey)

	resp, err := c.client.Donate(authed, &g.DonateRequest{CampaignID: *campaign, Amount: *amount})
	if err != nil {
		return err
	}
	if err := check(resp.Envelope); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "%s #%s\n", resp.Message, resp.Donation.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
