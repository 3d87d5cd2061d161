package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paperlang/paper/cmd/paper/replui"
	"github.com/paperlang/paper/config"
)

func runRepl() error {
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	session, err := buildSession()
	if err != nil {
		return err
	}

	model := replui.New(session, config.GetStyles())
	_, err = tea.NewProgram(model).Run()
	return err
}
