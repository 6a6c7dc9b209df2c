// Package ofx converts bank OFX/QFX statements into record drafts so a
// downloaded statement can be pushed to the backend in one command.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/Sharma7422/fintrack/internal/model"
)

// Parser reads OFX/QFX statements.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in real-world OFX files.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values (should be INFO, WARN, or ERROR).
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML-style files sometimes drop the closing bracket on a tag that
	// ends its line.
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseStatement parses an OFX/QFX statement into record drafts. Every
// draft is valid per model.RecordDraft.Validate; the caller decides which
// ones to send to the server.
func (p *Parser) ParseStatement(reader io.Reader, defaultCategory string) ([]model.RecordDraft, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var drafts []model.RecordDraft
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, tx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(tx, defaultCategory))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, tx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(tx, defaultCategory))
			}
		}
	}

	slog.Info("Parsed OFX statement",
		"drafts", len(drafts),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return drafts, nil
}

// convert maps one OFX transaction to a record draft. OFX amounts are
// negative for debits; the sign decides income vs expense and the stored
// amount is always positive.
func (p *Parser) convert(tx ofxgo.Transaction, defaultCategory string) model.RecordDraft {
	amount, _ := tx.TrnAmt.Float64()
	recordType := model.RecordTypeIncome
	if amount < 0 {
		amount = -amount
		recordType = model.RecordTypeExpense
	}

	title := p.title(tx)

	draft := model.RecordDraft{
		Type:     recordType,
		Category: defaultCategory,
		Title:    title,
		Amount:   amount,
		Date:     tx.DtPosted.Time,
	}
	if tx.Memo != "" && string(tx.Memo) != title {
		draft.Notes = string(tx.Memo)
	}
	return draft
}

// title picks the cleanest description the statement offers.
func (p *Parser) title(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return cleanDescription(string(tx.Payee.Name))
	}

	name := string(tx.Name)
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}
	return cleanDescription(name)
}

// cleanDescription strips processor prefixes and leading date fragments.
func cleanDescription(name string) string {
	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD " fragments.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic to be
// a useful title.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}
