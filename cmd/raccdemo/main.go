// raccdemo exercises the full Raccoon pipeline from the command line:
// keygen, repeated sign/verify over serialized keys, timing and retry
// telemetry, and an optional HTML chart of the collected series.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"raccoon/entropy"
	"raccoon/mask"
	"raccoon/measure"
	"raccoon/prof"
	"raccoon/racc"
	"raccoon/signverify"
)

func main() {
	var (
		iters    = flag.Int("n", 10, "number of sign/verify iterations")
		msgFlag  = flag.String("msg", "abc", "message to sign")
		plotPath = flag.String("plot", "", "write an HTML telemetry chart to this path")
		useKAT   = flag.Bool("kat", false, "use the deterministic KAT DRBG (seed bytes 0..47)")
		useAscon = flag.Bool("ascon", false, "use the Ascon mask generator instead of LFSR-127")
	)
	flag.Parse()

	p := racc.Preset128()
	if err := p.Validate(); err != nil {
		log.Fatalf("parameters: %v", err)
	}
	if *useAscon {
		signverify.NewMaskRNG = mask.NewAsconRNG
	}

	var es entropy.Source = entropy.Default
	if *useKAT {
		var seed [48]byte
		for i := range seed {
			seed[i] = byte(i)
		}
		es = entropy.NewAESDRBG(seed, [48]byte{}, false)
	}

	fmt.Printf("pk=%d sk=%d sig=%d bytes\n", p.PKSize(), p.SKSize(), p.SigSize())

	kgStart := time.Now()
	pkB, skB, err := signverify.KeyGen(&p, es)
	prof.Track(kgStart, "keygen")
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}

	msg := []byte(*msgFlag)
	for i := 0; i < *iters; i++ {
		var st signverify.SignStats
		signStart := time.Now()
		sig, err := signverify.SignDetachedWithStats(&p, skB, msg, es, &st)
		signMS := float64(time.Since(signStart)) / float64(time.Millisecond)
		prof.Track(signStart, "sign")
		if err != nil {
			log.Fatalf("sign %d: %v", i, err)
		}

		vStart := time.Now()
		ok := signverify.VerifyDetached(&p, pkB, msg, sig)
		prof.Track(vStart, "verify")
		if !ok {
			log.Fatalf("verify %d: rejected a fresh signature", i)
		}

		measure.Global.Add(measure.Record{
			SignMS:         signMS,
			CoreAttempts:   st.Core.Attempts,
			EncodeAttempts: st.EncodeAttempts,
			HInf:           st.Core.HInf,
			ZInf:           st.Core.ZInf,
			L2Scaled:       st.Core.L2Scaled,
			SigBytes:       len(sig),
		})
	}

	recs := measure.Global.SnapshotAndReset()
	sum := measure.Summarize(recs)
	fmt.Printf("sign: %d calls, mean %.2f ms, max %.2f ms, mean attempts %.2f\n",
		sum.Calls, sum.MeanMS, sum.MaxMS, sum.MeanAttempts)
	fmt.Printf("norms: max |h|=%d max |z|=%d\n", sum.MaxHInf, sum.MaxZInf)

	for _, l := range prof.Aggregate(prof.SnapshotAndReset()) {
		fmt.Printf("%-8s n=%-4d mean=%-12v min=%-12v max=%v\n",
			l.Label, l.Count, l.Mean(), l.Min, l.Max)
	}

	if *plotPath != "" {
		if err := measure.RenderHTML(*plotPath, recs); err != nil {
			fmt.Fprintf(os.Stderr, "plot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
}
