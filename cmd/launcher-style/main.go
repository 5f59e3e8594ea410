package main

import (
	"fmt"
	"log"
	"os"

	"launcher-style/internal/config"
	"launcher-style/internal/style"
	"launcher-style/internal/ui/styles"
)

func main() {
	// Загружаем стили: встроенная таблица или файл, если указан путь
	var (
		cfg style.StyleConfig
		err error
	)
	if len(os.Args) > 1 {
		cfg, err = config.LoadFile(os.Args[1])
	} else {
		cfg, err = style.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load style config: %v", err)
	}

	theme, err := styles.NewTheme(cfg)
	if err != nil {
		log.Fatalf("Failed to build theme: %v", err)
	}

	fmt.Println(theme.Preview())
}
