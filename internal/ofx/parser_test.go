package ofx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma7422/fintrack/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL DEPOSIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012501
<NAME>POS PURCHASE Whole Foods Market
<MEMO>weekly groceries
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParser_ParseStatement(t *testing.T) {
	p := NewParser()

	drafts, err := p.ParseStatement(strings.NewReader(sampleBankOFX), "Imported")
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	// Debits become expenses with positive amounts.
	assert.Equal(t, model.RecordTypeExpense, drafts[0].Type)
	assert.Equal(t, "STARBUCKS STORE #1234", drafts[0].Title)
	assert.InDelta(t, 25.50, drafts[0].Amount, 1e-9)
	assert.Equal(t, "Imported", drafts[0].Category)

	// Credits become income.
	assert.Equal(t, model.RecordTypeIncome, drafts[1].Type)
	assert.InDelta(t, 1500.00, drafts[1].Amount, 1e-9)

	// Processor prefixes are stripped; memo lands in notes.
	assert.Equal(t, "Whole Foods Market", drafts[2].Title)
	assert.Equal(t, "weekly groceries", drafts[2].Notes)

	for _, d := range drafts {
		assert.NoError(t, d.Validate())
	}
}

func TestParser_ParseStatement_InvalidInput(t *testing.T) {
	p := NewParser()

	_, err := p.ParseStatement(strings.NewReader("not an ofx file"), "Imported")
	assert.Error(t, err)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "prefix stripped", in: "POS PURCHASE TRADER JOES", want: "TRADER JOES"},
		{name: "date fragment stripped", in: "01/15 CITY PARKING", want: "CITY PARKING"},
		{name: "plain name untouched", in: "Blue Bottle Coffee", want: "Blue Bottle Coffee"},
		{name: "whitespace trimmed", in: "  ACME CORP  ", want: "ACME CORP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDescription(tt.in))
		})
	}
}
