package cmd

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	chatrender "github.com/swiftloan/swiftloan-cli/internal/adapters/render/chat"
	transcripttoml "github.com/swiftloan/swiftloan-cli/internal/adapters/transcript/toml"
	"github.com/swiftloan/swiftloan-cli/internal/application"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
)

const defaultAttachmentCaption = "Here is the requested document."

const chatHelp = `Commands:
  /attach <path> [caption]  Upload an image document (ID card, salary slip)
  /status                   Show the live application status panel
  /save <path>              Export the session transcript to a TOML file
  /letter                   Save the sanction letter (after approval)
  /help                     Show this help
  /quit                     End the session`

func newChatCmd(app *app) *cobra.Command {
	var strictUploads bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive loan application conversation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.newModelClient(cmd.Context())
			if err != nil {
				return fmt.Errorf("configure model client: %w", err)
			}

			orchestrator := application.NewOrchestrator(client, ports.SystemClock{}, app.logger, application.Config{
				StrictUploads: strictUploads,
			})

			return runChatLoop(cmd, app, orchestrator)
		},
	}

	cmd.Flags().BoolVar(&strictUploads, "strict-uploads", app.strictUploads, "Only clear a pending document request when a turn carries an attachment")

	return cmd
}

func runChatLoop(cmd *cobra.Command, app *app, orchestrator *application.Orchestrator) error {
	out := cmd.OutOrStdout()

	for _, turn := range orchestrator.Turns() {
		fmt.Fprintln(out, chatrender.Turn(turn))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, chatHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprint(out, "\n> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		done, err := handleChatLine(cmd.Context(), app, orchestrator, out, line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
		}
		if done {
			return nil
		}

		fmt.Fprint(out, "\n> ")
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}

func handleChatLine(ctx context.Context, app *app, orchestrator *application.Orchestrator, out io.Writer, line string) (bool, error) {
	if line == "" {
		return false, nil
	}

	command, rest, _ := strings.Cut(line, " ")
	switch command {
	case "/quit", "/exit":
		return true, nil
	case "/help":
		fmt.Fprintln(out, chatHelp)
		return false, nil
	case "/status":
		return false, printStatusPanel(out, orchestrator)
	case "/save":
		path := strings.TrimSpace(rest)
		if path == "" {
			return false, errors.New("usage: /save <path>")
		}
		if err := app.transcripts.Export(ctx, path, transcripttoml.Transcript{
			Session: orchestrator.Session(),
			Record:  orchestrator.Record(),
			Turns:   orchestrator.Turns(),
		}); err != nil {
			return false, fmt.Errorf("export transcript: %w", err)
		}
		fmt.Fprintf(out, "Transcript saved to %s\n", path)
		return false, nil
	case "/letter":
		path, err := app.letterRenderer.Render(ctx, orchestrator.Record())
		if err != nil {
			if errors.Is(err, domain.ErrNotApproved) {
				return false, errors.New("the sanction letter is only available once your loan is approved")
			}
			return false, err
		}
		fmt.Fprintf(out, "Sanction letter saved to %s\n", path)
		return false, nil
	case "/attach":
		path, caption, _ := strings.Cut(strings.TrimSpace(rest), " ")
		if path == "" {
			return false, errors.New("usage: /attach <path> [caption]")
		}
		attachment, err := loadAttachment(path)
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(caption) == "" {
			caption = defaultAttachmentCaption
		}
		return false, submitTurn(ctx, orchestrator, out, caption, attachment)
	}

	return false, submitTurn(ctx, orchestrator, out, line, nil)
}

func submitTurn(ctx context.Context, orchestrator *application.Orchestrator, out io.Writer, text string, attachment *domain.Attachment) error {
	wasApproved := orchestrator.Record().Status == domain.StatusApproved

	var result application.TurnResult
	err := runModelCallSpinner(ctx, out, fmt.Sprintf("%s is typing...", orchestrator.Session().ActiveAgent), func(ctx context.Context) error {
		var submitErr error
		result, submitErr = orchestrator.Submit(ctx, text, attachment)
		return submitErr
	})
	if err != nil {
		// Blank and double submissions are silent no-ops, matching the
		// gating behavior of the conversation core.
		if errors.Is(err, domain.ErrEmptySubmission) || errors.Is(err, domain.ErrSessionBusy) {
			return nil
		}
		return err
	}

	if result.SystemNote != nil {
		fmt.Fprintln(out, chatrender.Turn(*result.SystemNote))
		return nil
	}
	if result.Assistant != nil {
		fmt.Fprintln(out, chatrender.Turn(*result.Assistant))
	}

	if !wasApproved && result.Record.Status == domain.StatusApproved {
		fmt.Fprintln(out, "Loan approved! Type /letter to save your sanction letter.")
	}
	if result.Record.Status == domain.StatusRejected && result.Record.DecisionReason != "" {
		fmt.Fprintf(out, "Application rejected: %s\n", result.Record.DecisionReason)
	}

	return nil
}

func printStatusPanel(out io.Writer, orchestrator *application.Orchestrator) error {
	panel, err := chatrender.Render(
		application.StatusSnapshot(orchestrator.Session(), orchestrator.Record()),
		chatrender.RenderOptions{},
	)
	if err != nil {
		return fmt.Errorf("render status panel: %w", err)
	}

	fmt.Fprintln(out, panel)
	return nil
}

// loadAttachment reads an image file and packages it the way the transport
// expects: base64 payload behind a data-URI wrapper, MIME type from the file
// extension.
func loadAttachment(path string) (*domain.Attachment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment %q: %w", path, err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("attachment %q: only image files are supported", path)
	}

	displayURI := path
	if abs, err := filepath.Abs(path); err == nil {
		displayURI = "file://" + abs
	}

	encoded := base64.StdEncoding.EncodeToString(raw)

	return &domain.Attachment{
		Kind:       domain.AttachmentImage,
		Data:       fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
		MIMEType:   mimeType,
		DisplayURI: displayURI,
	}, nil
}
