package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
)

type step struct {
	method string
	path   string
	actor  string
	body   string
}

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "service address")
	orderID := flag.String("order", "", "order id printed by auction-generator")
	buyer := flag.String("buyer", "", "buyer id")
	seller := flag.String("seller", "", "seller id")
	race := flag.Bool("race", false, "send cancel and shipment at the same time after the address step")
	flag.Parse()

	if *orderID == "" || *buyer == "" || *seller == "" {
		flag.Usage()
		os.Exit(1)
	}

	orderURL := *baseURL + "/orders/" + *orderID
	steps := []step{
		{http.MethodGet, "", *buyer, ""},
		{http.MethodPost, "/payment-intent", *buyer, ""},
		{http.MethodPost, "/payment", *buyer, `{"proof":"tok_visa"}`},
		// повтор ничего не меняет
		{http.MethodPost, "/payment", *buyer, `{"proof":"tok_visa"}`},
		{http.MethodPost, "/shipment", *seller, `{"tracking_number":"VN000123"}`},
		{http.MethodPut, "/shipping-address", *buyer, `{"full_name":"Nguyen Van A","phone":"0901234567","street_address":"1 Le Loi","ward":"Ben Nghe","district":"1","city":"HCMC"}`},
	}
	for _, s := range steps {
		do(orderURL, s)
	}

	if *race {
		var wg sync.WaitGroup
		wg.Go(func() { do(orderURL, step{http.MethodPost, "/cancel", *seller, `{"reason":"out of stock"}`}) })
		wg.Go(func() { do(orderURL, step{http.MethodPost, "/shipment", *seller, `{"tracking_number":"VN000123"}`}) })
		wg.Wait()
	} else {
		do(orderURL, step{http.MethodPost, "/shipment", *seller, `{"tracking_number":"VN000123"}`})
	}

	for _, s := range []step{
		{http.MethodPost, "/receipt", *buyer, ""},
		{http.MethodPost, "/rating", *buyer, `{"polarity":1,"comment":"as described"}`},
		{http.MethodPost, "/rating", *buyer, `{"polarity":1}`},
		{http.MethodPost, "/rating", *seller, `{"polarity":1,"comment":"paid fast"}`},
		{http.MethodPut, "/rating", *buyer, `{"polarity":-1,"comment":"item broke after a week"}`},
		{http.MethodGet, "", *buyer, ""},
	} {
		do(orderURL, s)
	}

	do(*baseURL, step{http.MethodGet, "/users/" + *seller + "/reputation", "", ""})
}

func do(base string, s step) {
	var body io.Reader
	if s.body != "" {
		body = bytes.NewBufferString(s.body)
	}
	req, err := http.NewRequest(s.method, base+s.path, body)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	if s.actor != "" {
		req.Header.Set("X-User-ID", s.actor)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	fmt.Println(s.method, base+s.path, "as", s.actor, "->", resp.Status)
	fmt.Println("  ", string(bytes.TrimSpace(data)))
}
