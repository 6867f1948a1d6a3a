package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"commerce-chatbot-be/internal/constant"
	"commerce-chatbot-be/internal/pkg/logger"
	"commerce-chatbot-be/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Sentinel terminations for a REPL session. Both are clean shutdowns,
// not failures.
var (
	ErrExit        = errors.New("exit requested")
	ErrIdleTimeout = errors.New("session idle timeout")
)

type lineResult struct {
	text string
	err  error
}

// REPL is the line-oriented chat surface. One REPL drives one session;
// every prompt honors the exit sentinel and the idle timeout.
type REPL struct {
	chatService service.IChatService
	idleTimeout time.Duration
	log         logger.ILogger

	lines chan lineResult

	botTag  func(a ...interface{}) string
	userTag func(a ...interface{}) string
}

func NewREPL(chatService service.IChatService, idleTimeout time.Duration, log logger.ILogger) *REPL {
	r := &REPL{
		chatService: chatService,
		idleTimeout: idleTimeout,
		log:         log,
		lines:       make(chan lineResult),
		botTag:      color.New(color.FgCyan, color.Bold).SprintFunc(),
		userTag:     color.New(color.FgGreen, color.Bold).SprintFunc(),
	}
	go r.readLines()
	return r
}

func (r *REPL) readLines() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		r.lines <- lineResult{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	r.lines <- lineResult{err: err}
}

// Run loops until exit, idle timeout, context cancellation, or closed
// input. Clean terminations return nil.
func (r *REPL) Run(ctx context.Context) error {
	r.say(constant.ChatMessageWelcome)
	sessionId := uuid.NewString()
	prompter := &consolePrompter{repl: r, ctx: ctx}

	for {
		input, err := r.ask(ctx, r.userTag("You: "))
		if err != nil {
			return r.finish(err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		reply, err := r.chatService.HandleTurn(ctx, sessionId, input, prompter)
		if err != nil {
			if errors.Is(err, ErrExit) || errors.Is(err, ErrIdleTimeout) || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return r.finish(err)
			}
			r.log.Error("cli", "turn failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
			r.say(constant.ChatMessageStorageFailure)
			continue
		}
		r.say(reply)
	}
}

func (r *REPL) finish(err error) error {
	switch {
	case errors.Is(err, ErrExit):
		fmt.Println("Exiting conversation.")
		return nil
	case errors.Is(err, ErrIdleTimeout):
		r.say("Session ended after inactivity. Come back anytime!")
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}

func (r *REPL) say(message string) {
	fmt.Printf("%s %s\n", r.botTag("Chatbot:"), message)
}

// ask prints the prompt and waits for one line, bounded by the idle
// timeout and the context.
func (r *REPL) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Print(prompt)

	timer := time.NewTimer(r.idleTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", context.Canceled
	case <-timer.C:
		return "", ErrIdleTimeout
	case line := <-r.lines:
		if line.err != nil {
			return "", line.err
		}
		if strings.EqualFold(strings.TrimSpace(line.text), "exit") {
			return "", ErrExit
		}
		return line.text, nil
	}
}

// consolePrompter exposes the REPL's prompt loop to the dialogue
// engine, prefixing every question as chatbot speech.
type consolePrompter struct {
	repl *REPL
	ctx  context.Context
}

func (p *consolePrompter) Ask(prompt string) (string, error) {
	return p.repl.ask(p.ctx, fmt.Sprintf("%s %s", p.repl.botTag("Chatbot:"), prompt))
}

func (p *consolePrompter) Say(message string) {
	p.repl.say(message)
}
