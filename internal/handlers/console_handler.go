package handlers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"

	"lotto/internal/models"
	"lotto/internal/services"

	"github.com/google/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	promptPayment = "구입금액을 입력해 주세요."
	promptWinning = "당첨 번호를 입력해 주세요."
	promptBonus   = "보너스 번호를 입력해 주세요."
)

// ConsoleHandler drives one purchase and check over a text console.
type ConsoleHandler struct {
	seller    *services.Seller
	checker   *services.Checker
	templates *template.Template
	in        *bufio.Scanner
	out       io.Writer
	printer   *message.Printer
}

// NewConsoleHandler creates a new ConsoleHandler reading answers from in and
// writing prompts and reports to out.
func NewConsoleHandler(seller *services.Seller, checker *services.Checker, templates *template.Template, in io.Reader, out io.Writer) *ConsoleHandler {
	return &ConsoleHandler{
		seller:    seller,
		checker:   checker,
		templates: templates,
		in:        bufio.NewScanner(in),
		out:       out,
		printer:   message.NewPrinter(language.Korean),
	}
}

type purchaseView struct {
	Count int
	Lines []models.LottoNumbers
}

type rankRow struct {
	Label string
	Prize string
	Count int
}

type reportView struct {
	Rows []rankRow
	Rate string
}

// Run asks for the payment, sells a ticket, asks for the drawn numbers and
// prints the result. The first invalid answer stops the run.
func (h *ConsoleHandler) Run() error {
	ticket, err := h.BuyTicket()
	if err != nil {
		return err
	}

	winning, err := h.ReadWinningNumbers()
	if err != nil {
		return err
	}

	return h.ShowResult(h.checker.CheckTicket(ticket, winning))
}

// BuyTicket reads the payment and prints the lines that were bought.
func (h *ConsoleHandler) BuyTicket() (models.Ticket, error) {
	line, err := h.ask(promptPayment)
	if err != nil {
		return models.Ticket{}, err
	}

	payment, err := models.ParseMoney(line)
	if err != nil {
		return models.Ticket{}, err
	}

	ticket, err := h.seller.SellTo(payment)
	if err != nil {
		return models.Ticket{}, err
	}

	view := purchaseView{Count: ticket.Size(), Lines: ticket.Lines()}
	if err := h.render("purchase.tmpl", view); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

// ReadWinningNumbers reads the drawn line and then the bonus number.
func (h *ConsoleHandler) ReadWinningNumbers() (models.WinningNumbers, error) {
	line, err := h.ask(promptWinning)
	if err != nil {
		return models.WinningNumbers{}, err
	}
	numbers, err := ParseLottoNumbers(line)
	if err != nil {
		return models.WinningNumbers{}, err
	}

	line, err = h.ask(promptBonus)
	if err != nil {
		return models.WinningNumbers{}, err
	}
	return ParseBonus(line, numbers)
}

// ShowResult prints the rank table from FIFTH up to FIRST and the rate of return.
func (h *ConsoleHandler) ShowResult(result models.WinResult) error {
	view := reportView{Rate: result.RateOfReturn().StringFixed(1)}
	for _, rank := range models.ReportRanks() {
		view.Rows = append(view.Rows, rankRow{
			Label: rank.Label(),
			Prize: h.printer.Sprintf("%d", rank.Prize()),
			Count: result.Count(rank),
		})
	}
	return h.render("report.tmpl", view)
}

func (h *ConsoleHandler) ask(prompt string) (string, error) {
	if _, err := fmt.Fprintln(h.out, prompt); err != nil {
		return "", err
	}
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(h.in.Text()), nil
}

func (h *ConsoleHandler) render(name string, data any) error {
	if err := h.templates.ExecuteTemplate(h.out, name, data); err != nil {
		logger.Infof("Error executing template %s: %v", name, err)
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
