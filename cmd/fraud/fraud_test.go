package fraud_test

import (
	"testing"

	"fjacquet/bank-insights/cmd/fraud"

	"github.com/stretchr/testify/assert"
)

func TestFraudCommand_Metadata(t *testing.T) {
	assert.Equal(t, "fraud", fraud.Cmd.Use)
	assert.Contains(t, fraud.Cmd.Short, "fraud risk")
	assert.NotNil(t, fraud.Cmd.Run)
}

func TestFraudCommand_Flags(t *testing.T) {
	balanceFlag := fraud.Cmd.Flags().Lookup("balance")
	assert.NotNil(t, balanceFlag)
	assert.Equal(t, "b", balanceFlag.Shorthand)
	assert.Equal(t, "", balanceFlag.DefValue)

	accountFlag := fraud.Cmd.Flags().Lookup("account")
	assert.NotNil(t, accountFlag)
	assert.Equal(t, "a", accountFlag.Shorthand)
}
