package main

import (
	"flag"
	"log"
	"net/http"

	"learn-path/server/internal/api"
	"learn-path/server/internal/config"
	"learn-path/server/internal/hf"
	"learn-path/server/internal/nlu"
	"learn-path/server/internal/pathgen"
	"learn-path/server/internal/responder"
	"learn-path/server/internal/session"
	"learn-path/server/internal/taxonomy"

	"github.com/joho/godotenv"
)

func main() {
	// 参数用 flag，敏感信息（Hugging Face API Key）用环境变量或 .env。
	// - HUGGINGFACE_API_KEY：可选；缺失时只跳过远端增强，本地生成照常工作
	configPath := flag.String("config", "", "yaml config path (optional)")
	addr := flag.String("addr", "", "http listen address (overrides config)")
	flag.Parse()

	// .env 是本地开发便利项，不存在就跳过。
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tax := taxonomy.Default()
	if cfg.Paths.Taxonomy != "" {
		tax, err = taxonomy.Load(cfg.Paths.Taxonomy)
		if err != nil {
			log.Fatalf("load taxonomy: %v", err)
		}
	}

	generator := pathgen.New()
	resp := responder.New(nlu.New(tax))
	hfClient := hf.NewClient(cfg.HuggingFace, generator)
	store := session.NewInMemoryStore()

	server := api.NewServer(cfg, store, resp, hfClient, generator)

	listenAddr := cfg.Addr()
	if *addr != "" {
		listenAddr = *addr
	}

	log.Printf("learnpath server listening on %s", listenAddr)
	httpServer := &http.Server{
		Addr:         listenAddr,
		Handler:      server.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
