package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff/v3"

	readiness "github.com/simonlevelai/readiness.wearelevel.ai-v2"
)

func main() {

	fs := flag.NewFlagSet("readiness", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this assessment service instance")
		serviceID   = fs.String("id", "", "id for this assessment service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		storeURL    = fs.String("storeUrl", "", "base url of the aggregate store used for persistence and benchmarks")
		storeKey    = fs.String("storeKey", "", "api key for the aggregate store")
		mailPrv     = fs.String("mailProvider", "mailerlite", "transactional email provider (mailerlite|mailersend)")
		mailKey     = fs.String("mailKey", "", "api key for the email provider, leave blank to disable report emails")
		mailFrom    = fs.String("mailFrom", "reports@wearelevel.ai", "from address for report emails")
		mailName    = fs.String("mailFromName", "Level AI Reports", "from name for report emails")
		tmplLevel   = fs.String("templateLevelai", "", "email template id for the levelai theme")
		tmplT4G     = fs.String("templateTech4good", "", "email template id for the tech4good theme")
		tmplRaise   = fs.String("templateRaise", "", "email template id for the raise theme")
		webhookURL  = fs.String("webhookUrl", "", "crm webhook url notified on each submission, leave blank to disable")
	)

	ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("READINESS_SRVC"),
	)

	opts := []readiness.Option{
		readiness.Name(*serviceName),
		readiness.ID(*serviceID),
		readiness.Host(*serviceHost),
		readiness.Port(*servicePort),
		readiness.StoreURL(*storeURL),
		readiness.StoreKey(*storeKey),
		readiness.Mail(*mailPrv, *mailKey, *mailFrom, *mailName),
		readiness.MailTemplate("levelai", *tmplLevel),
		readiness.MailTemplate("tech4good", *tmplT4G),
		readiness.MailTemplate("raise", *tmplRaise),
		readiness.WebhookURL(*webhookURL),
	}

	srvc, err := readiness.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create readiness service:\n%s\n\n", err)
		return
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\nreadiness service shutting down")
		srvc.Shutdown()
		fmt.Println("readiness service closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
