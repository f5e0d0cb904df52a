package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func (that *Console) ChooseMode(ctx context.Context) (entity.Mode, error) {
	that.printf("Choose game mode:\n1. Two Players\n2. Play against Computer\n")

	for {
		answer, err := that.ask(ctx, "Enter 1 or 2: ")
		if err != nil {
			return "", err
		}

		switch answer {
		case "1":
			return entity.ModeTwoPlayers, nil
		case "2":
			return entity.ModeVsComputer, nil
		}

		that.printf("Please enter 1 or 2!\n")
	}
}

func (that *Console) ChooseDifficulty(ctx context.Context) (entity.Difficulty, error) {
	that.printf("Select difficulty:\n1. Easy\n2. Medium\n3. Hard\n")

	for {
		answer, err := that.ask(ctx, "Enter 1, 2 or 3: ")
		if err != nil {
			return "", err
		}

		difficulty, err := entity.ParseDifficulty(answer)
		if err == nil {
			return difficulty, nil
		}

		that.printf("Please enter 1, 2 or 3!\n")
	}
}

func (that *Console) ChooseMark(ctx context.Context) (entity.Mark, error) {
	for {
		answer, err := that.ask(ctx, "Choose your symbol, X moves first (X/O): ")
		if err != nil {
			return entity.EmptyCell, err
		}

		if mark, ok := entity.ParseMark(answer); ok {
			return mark, nil
		}

		that.printf("Please enter X or O!\n")
	}
}

// ReadMove - reads a keypad position until it names an empty cell.
func (that *Console) ReadMove(ctx context.Context, board entity.Board, mark entity.Mark) (entity.Move, error) {
	for {
		answer, err := that.ask(ctx, "Player "+mark.String()+", enter your move (1-9) or 'q' to quit: ")
		if err != nil {
			return entity.Move{}, err
		}

		position, err := strconv.Atoi(answer)
		if err != nil {
			that.printf("Please enter a valid number or 'q' to quit!\n")
			continue
		}

		move, ok := entity.MoveFromPosition(position)
		if !ok {
			that.printf("Please enter a number between 1 and 9!\n")
			continue
		}

		if !board.IsEmpty(move.Row, move.Col) {
			that.printf("That spot is already taken! Try again.\n")
			continue
		}

		return move, nil
	}
}

func (that *Console) AskRematch(ctx context.Context) (bool, error) {
	for {
		answer, err := that.ask(ctx, "Play again? (y/n): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		that.printf("Please enter y or n!\n")
	}
}
