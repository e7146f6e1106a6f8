package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/feed"
	"ticket-engine/internal/gateway"
	"ticket-engine/internal/kvstore"
	"ticket-engine/internal/logger"
	"ticket-engine/internal/model"
	"ticket-engine/internal/service"
	"ticket-engine/internal/worker"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const usage = `usage: ticketctl [flags] <command> [args]

commands:
  login <token>             store the bearer token
  logout                    forget the bearer token
  show                      print the draft ticket
  add <matchId> <odds> <bet>
                            add or replace the selection for a match
  remove <matchId>          drop the selection for a match
  stake <value>             set the stake (at least 1)
  clear                     empty the draft
  save                      submit the draft as a ticket
  tickets                   list saved tickets
  delete <ticketId>         delete a saved ticket
  balance                   refresh and print the credit balance
  costs                     print per-content credit costs
  check <type> <id>         ask whether content is unlocked
  unlock <type> <id>        spend credits on content
  usage                     print the AI chat token allowance
  convert                   turn credits into AI chat tokens
  chat <matchId> <text>     ask the AI match chat
  history <matchId>         print the AI chat for a match
  accept <matchId> <proposalId>
                            copy a chat ticket proposal into the draft
  decline <matchId> <proposalId>
                            decline a chat ticket proposal
  watch                     follow ticket settlements and balance until interrupted
`

type app struct {
	client    *gateway.Client
	tickets   *service.TicketBuilder
	ledger    *service.CreditLedger
	unlock    *service.UnlockGate
	chat      *service.ChatService
	proposals *service.ProposalAdapter
	cfg       *config.Config
	out       io.Writer
	logger    zerolog.Logger
}

func newApp(cfg *config.Config, client *gateway.Client, store kvstore.Store, out io.Writer, log zerolog.Logger) *app {
	tickets := service.NewTicketBuilder(client, store, log)
	ledger := service.NewCreditLedger(client, store, log)
	chat := service.NewChatService(client, log)
	return &app{
		client:    client,
		tickets:   tickets,
		ledger:    ledger,
		unlock:    service.NewUnlockGate(client, ledger, log),
		chat:      chat,
		proposals: service.NewProposalAdapter(tickets, client, chat, log),
		cfg:       cfg,
		out:       out,
		logger:    log,
	}
}

func main() {
	timeout := flag.Duration("timeout", 0, "overall deadline for one-shot commands (0 uses API_TIMEOUT)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		fmt.Fprintln(flag.CommandLine.Output(), "\nflags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	// Odds and stakes go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout carries command output
	log := logger.WithLevel(logger.NewWithOutput(os.Stderr, cfg.Log.Pretty), cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := kvstore.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer closeStore()

	client := gateway.NewClient(cfg.Gateway, store, log, gateway.WithSessionInvalidated(func() {
		fmt.Fprintln(os.Stderr, "session expired: run `ticketctl login <token>`")
	}))

	a := newApp(cfg, client, store, os.Stdout, log)

	if err := a.tickets.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to restore draft")
	}
	if err := a.ledger.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to restore balance")
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if cmd != "watch" {
		d := *timeout
		if d <= 0 {
			d = cfg.Gateway.Timeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	if err := a.run(ctx, cmd, args); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		stop()
		closeStore()
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		if len(args) != 1 {
			return errUsage
		}
		return a.client.SetAuthToken(ctx, args[0])

	case "logout":
		return a.client.ClearAuthToken(ctx)

	case "show":
		a.printDraft()
		return nil

	case "add":
		if len(args) < 3 {
			return errUsage
		}
		matchID, err := parseMatchID(args[0])
		if err != nil {
			return err
		}
		odds, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid odds %q", args[1])
		}
		a.tickets.AddSelection(model.Selection{
			MatchID: matchID,
			Match:   model.MatchSnapshot{ID: matchID},
			Bet:     args[2],
			Odds:    odds,
		})
		a.printDraft()
		return nil

	case "remove":
		if len(args) != 1 {
			return errUsage
		}
		matchID, err := parseMatchID(args[0])
		if err != nil {
			return err
		}
		a.tickets.RemoveSelection(matchID)
		a.printDraft()
		return nil

	case "stake":
		if len(args) != 1 {
			return errUsage
		}
		stake, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid stake %q", args[0])
		}
		a.tickets.UpdateStake(stake)
		a.printDraft()
		return nil

	case "clear":
		a.tickets.Clear()
		return nil

	case "save":
		ticket, err := a.tickets.Save(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "saved ticket %s: odds %s, stake %s, potential win %s\n",
			ticket.ID, ticket.TotalOdds.StringFixed(2), ticket.Stake.StringFixed(2), ticket.PotentialWin.StringFixed(2))
		return nil

	case "tickets":
		if err := a.tickets.LoadTickets(ctx); err != nil {
			return err
		}
		a.printTickets()
		return nil

	case "delete":
		if len(args) != 1 {
			return errUsage
		}
		return a.tickets.DeleteTicket(ctx, args[0])

	case "balance":
		if err := a.ledger.LoadBalance(ctx); err != nil {
			return err
		}
		a.printBalance()
		return nil

	case "costs":
		if err := a.ledger.LoadCosts(ctx); err != nil {
			return err
		}
		costs, _ := a.ledger.Costs()
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		for _, ct := range []model.ContentType{
			model.ContentMatchPrediction, model.ContentTip, model.ContentParlay, model.ContentAIChat,
			model.ContentValueBet, model.ContentTeamAnalysis, model.ContentPlayerAnalysis,
		} {
			fmt.Fprintf(w, "%s\t%d\n", ct, costs.For(ct))
		}
		return w.Flush()

	case "check":
		ref, err := parseRef(args)
		if err != nil {
			return err
		}
		status, err := a.unlock.Check(ctx, ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "unlocked: %t  cost: %d  can afford: %t\n", status.IsUnlocked, status.Cost, status.CanAfford)
		return nil

	case "unlock":
		ref, err := parseRef(args)
		if err != nil {
			return err
		}
		if err := a.ledger.RefreshAll(ctx); err != nil {
			a.logger.Debug().Err(err).Msg("credit refresh incomplete")
		}
		result, err := a.unlock.Unlock(ctx, ref)
		if err != nil {
			return err
		}
		a.printUnlock(result)
		return nil

	case "usage":
		if err := a.chat.LoadUsage(ctx); err != nil {
			return err
		}
		a.printUsage()
		return nil

	case "convert":
		if _, err := a.chat.ConvertCredits(ctx); err != nil {
			return err
		}
		a.printUsage()
		return nil

	case "chat":
		if len(args) < 2 {
			return errUsage
		}
		matchID, err := parseMatchID(args[0])
		if err != nil {
			return err
		}
		reply, err := a.chat.SendMessage(ctx, matchID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		a.printMessage(*reply)
		return nil

	case "history":
		if len(args) != 1 {
			return errUsage
		}
		matchID, err := parseMatchID(args[0])
		if err != nil {
			return err
		}
		if err := a.chat.LoadHistory(ctx, matchID); err != nil {
			return err
		}
		for _, entry := range a.chat.Messages(matchID) {
			a.printMessage(entry.Message)
		}
		return nil

	case "accept", "decline":
		if len(args) != 2 {
			return errUsage
		}
		matchID, err := parseMatchID(args[0])
		if err != nil {
			return err
		}
		proposal, err := a.findProposal(ctx, matchID, args[1])
		if err != nil {
			return err
		}
		if cmd == "decline" {
			if err := a.proposals.Decline(ctx, proposal); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "proposal %s declined\n", proposal.ID)
			return nil
		}
		if err := a.proposals.Accept(ctx, proposal); err != nil {
			return err
		}
		a.printDraft()
		return nil

	case "watch":
		return a.watch(ctx)

	default:
		return errUsage
	}
}

// watch runs the balance worker and the ticket feed until ctx is done.
func (a *app) watch(ctx context.Context) error {
	if err := a.tickets.LoadTickets(ctx); err != nil {
		return err
	}
	a.printTickets()

	bw := worker.NewBalanceWorker(a.ledger, a.cfg.Worker.BalanceRefreshInterval, a.logger)
	bw.Start(ctx)
	defer bw.Stop()

	listener := feed.NewListener(a.client, printingApplier{inner: a.tickets, out: a.out}, a.cfg.Feed, a.logger)
	listener.Run(ctx)
	return nil
}

type printingApplier struct {
	inner service.StatusApplier
	out   io.Writer
}

func (p printingApplier) ApplyStatus(update model.TicketStatusUpdate) bool {
	ok := p.inner.ApplyStatus(update)
	if ok {
		fmt.Fprintf(p.out, "ticket %s is %s\n", update.TicketID, update.Status)
	}
	return ok
}

// findProposal reloads the match chat and returns the ticket proposal with
// the given proposal or message id.
func (a *app) findProposal(ctx context.Context, matchID int64, id string) (*model.TicketProposal, error) {
	if err := a.chat.LoadHistory(ctx, matchID); err != nil {
		return nil, err
	}
	for _, entry := range a.chat.Messages(matchID) {
		p := entry.Message.TicketProposal
		if p != nil && (p.ID == id || entry.Message.ID == id) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no ticket proposal %q in the chat for match %d", id, matchID)
}

func (a *app) printUsage() {
	usage, ok := a.chat.Usage()
	if !ok {
		fmt.Fprintln(a.out, "token usage unknown")
		return
	}
	fmt.Fprintf(a.out, "tokens used %d of %d, %d remaining\n", usage.Used, usage.Limit, usage.Remaining)
}

func (a *app) printMessage(msg model.ChatMessage) {
	fmt.Fprintf(a.out, "[%s] %s\n", msg.Role, msg.Content)
	if p := msg.TicketProposal; p != nil {
		fmt.Fprintf(a.out, "  proposal %s (%s): %d selections, total odds %s\n",
			p.ID, p.Status, len(p.Selections), p.TotalOdds.StringFixed(2))
	}
}

func (a *app) printDraft() {
	draft := a.tickets.Draft()
	if draft.Empty() {
		fmt.Fprintln(a.out, "draft is empty")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATCH\tBET\tODDS")
	for _, sel := range draft.Selections {
		fmt.Fprintf(w, "%d\t%s\t%s\n", sel.MatchID, sel.Bet, sel.Odds.StringFixed(2))
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "total odds %s  stake %s  potential win %s\n",
		draft.TotalOdds().StringFixed(2), draft.Stake.StringFixed(2), draft.PotentialWin().StringFixed(2))
}

func (a *app) printTickets() {
	list := a.tickets.Tickets()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "no saved tickets")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSELECTIONS\tODDS\tSTAKE\tPOTENTIAL WIN\tCREATED")
	for _, t := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.Status, len(t.Selections), t.TotalOdds.StringFixed(2), t.Stake.StringFixed(2),
			t.PotentialWin.StringFixed(2), t.CreatedAt.Local().Format(time.DateTime))
	}
	_ = w.Flush()
}

func (a *app) printBalance() {
	balance, ok := a.ledger.Balance()
	if !ok {
		fmt.Fprintln(a.out, "balance unknown")
		return
	}
	fmt.Fprintf(a.out, "total %d (subscription %d, purchased %d)\n", balance.Total, balance.Subscription, balance.Purchased)
}

func (a *app) printUnlock(result *model.UnlockResult) {
	switch {
	case result.Prediction != nil:
		p := result.Prediction
		fmt.Fprintf(a.out, "prediction for match %d: %s (confidence %d%%, odds %s)\n",
			p.MatchID, p.Prediction, p.Confidence, p.Odds.StringFixed(2))
	case result.Tip != nil:
		t := result.Tip
		fmt.Fprintf(a.out, "tip %s: %s (confidence %d%%, odds %s)\n", t.ID, t.Tip, t.Confidence, t.Odds.StringFixed(2))
	default:
		fmt.Fprintf(a.out, "unlocked %s %s\n", result.Ref.ContentType, result.Ref.ContentID)
	}
	a.printBalance()
}

var errUsage = errors.New("invalid command or arguments, run ticketctl -h")

func parseMatchID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid match id %q", s)
	}
	return id, nil
}

func parseRef(args []string) (model.ContentRef, error) {
	if len(args) != 2 {
		return model.ContentRef{}, errUsage
	}
	ct, err := model.ParseContentType(args[0])
	if err != nil {
		return model.ContentRef{}, fmt.Errorf("unknown content type %q", args[0])
	}
	return model.ContentRef{ContentType: ct, ContentID: args[1]}, nil
}

// describe turns an error into the message shown to the user.
func describe(err error) string {
	var apiErr *model.APIError
	switch model.KindOf(err) {
	case model.KindInsufficientCredits:
		if errors.As(err, &apiErr) {
			return fmt.Sprintf("not enough credits: %d required, %d available. Buy a credit pack to continue.", apiErr.Required, apiErr.Available)
		}
		return "not enough credits"
	case model.KindTierRequired:
		return "this feature needs the expert subscription"
	case model.KindUnauthorized:
		return "not signed in: run `ticketctl login <token>`"
	case model.KindNetwork, model.KindTimeout:
		return fmt.Sprintf("%v (check your connection and try again)", err)
	}
	if model.Retryable(err) {
		return fmt.Sprintf("%v (try again)", err)
	}
	return err.Error()
}
