package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// stdin is the menu input source - replaced in tests.
var stdin io.Reader = os.Stdin

// Menu presents the interactive lifecycle menu and dispatches the selected
// operation. It is the default action when mirza runs without a subcommand.
func Menu(ctx context.Context) error {
	fmt.Println(renderMenu())
	fmt.Print("Select an option: ")

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read selection: %w", err)
	}

	switch choice := strings.TrimSpace(line); choice {
	case "1":
		return Install(ctx, false)
	case "2":
		return Update(ctx)
	case "3":
		return Uninstall(ctx)
	case "0":
		return nil
	default:
		return fmt.Errorf("invalid selection %q, expected 1, 2, 3 or 0", choice)
	}
}
