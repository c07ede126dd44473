// FILE: example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/ini"
)

// Profile is bound from the [Profile] section
type Profile struct {
	Name string
	Age  int
}

func main() {
	dir, err := os.MkdirTemp("", "ini-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.ini")
	sample := "[Settings]\nTheme=Dark\nAutoSave=True\n\n[Profile]\nName=John\nAge=30\n"
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		log.Fatal(err)
	}

	cfg, err := ini.Open(path, ini.StrategyEager)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Reading values
	theme, _, _ := cfg.Get("Settings:Theme")
	name, _, _ := cfg.Get("Profile:Name")
	fmt.Println("Read using Get:")
	fmt.Printf("Theme: %s\n", theme)
	fmt.Printf("Name: %s\n", name)

	// 2. Modifying a value
	if err := cfg.Set("Profile:Name", "Jane"); err != nil {
		log.Fatal(err)
	}
	name, _, _ = cfg.Get("Profile:Name")
	fmt.Printf("\nModified Name: %s\n", name)

	// 3. Typed access
	autoSave, err := cfg.Bool("Settings:AutoSave")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nAutoSave: %v\n", autoSave)
	_ = cfg.Set("Settings:AutoSave", "False")

	// 4. Binding a section
	profile, err := ini.Bind[Profile](cfg, "Profile")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nBind to struct:")
	fmt.Printf("Name: %s\n", profile.Name)
	fmt.Printf("Age: %d\n", profile.Age)

	// 5. Writing and saving all changes at once
	_ = cfg.Set("Profile:Name", "John")
	_ = cfg.Set("Profile:Age", "35")
	if err := cfg.Save(); err != nil {
		log.Fatal(err)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nFile after save:\n%s", saved)
}
