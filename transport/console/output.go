package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const rowSeparator = "-----------\n"

func (that *Console) ShowBoard(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cells = append(cells, board[row][col].String())
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < entity.BoardSize-1 {
			sb.WriteString(rowSeparator)
		}
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Console) ShowOutcome(outcome entity.Outcome, conf entity.MatchConfig) {
	switch {
	case outcome.Status == entity.StatusDraw:
		that.printf("It's a tie!\n")
	case outcome.Status == entity.StatusWin && conf.ControllerOf(outcome.Winner) == entity.Machine:
		that.printf("Computer wins!\n")
	case outcome.Status == entity.StatusWin:
		that.printf("Player %s wins!\n", outcome.Winner)
	}
}

func (that *Console) ShowScore(score entity.Score) {
	that.printf("Score - X: %d  O: %d  Draws: %d\n", score.XWins, score.OWins, score.Draws)
}

func (that *Console) ShowError(err error) {
	that.printf("Error: %v\n", err)
}
