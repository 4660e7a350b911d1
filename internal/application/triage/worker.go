// Package triage runs the automated pipeline that takes newly registered
// inquiries through analysis and up to the admin approval gate.
package triage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inqboard/internal/application/workflow"
	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/domain/server"
	"inqboard/internal/infrastructure/analysis"
	"inqboard/internal/shared/biztime"
	"inqboard/internal/shared/config"
	sharedErrors "inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

// Analyzer produces the triage report for one inquiry.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.AnalyzeRequest) (string, error)
}

// Collector gathers live diagnostics from the inquiry's server, nil when the
// server is unknown or unreachable configuration-wise.
type Collector interface {
	Collect(ctx context.Context, srv *server.Server) map[string]string
}

// Notifier pushes operator alerts; delivery is best-effort.
type Notifier interface {
	Notify(text string) bool
}

type Worker struct {
	inquiries inquiry.Repository
	logs      inquiry.ProcessLogRepository
	comments  inquiry.CommentRepository
	servers   server.Repository
	engine    *workflow.Engine
	tx        workflow.TxRunner
	collector Collector
	analyzer  Analyzer
	notifier  Notifier
	lock      *RunLock
	cfg       config.TriageConfig
	log       logger.Interface

	// Injection points for tests.
	sleep     func(time.Duration)
	pickAlias func() string
}

func NewWorker(
	inquiries inquiry.Repository,
	logs inquiry.ProcessLogRepository,
	comments inquiry.CommentRepository,
	servers server.Repository,
	engine *workflow.Engine,
	tx workflow.TxRunner,
	collector Collector,
	analyzer Analyzer,
	notifier Notifier,
	lock *RunLock,
	cfg config.TriageConfig,
	log logger.Interface,
) *Worker {
	return &Worker{
		inquiries: inquiries,
		logs:      logs,
		comments:  comments,
		servers:   servers,
		engine:    engine,
		tx:        tx,
		collector: collector,
		analyzer:  analyzer,
		notifier:  notifier,
		lock:      lock,
		cfg:       cfg,
		log:       log,
		sleep:     time.Sleep,
		pickAlias: RandomAdminAlias,
	}
}

// RunOnce executes one pipeline pass: select the oldest registered
// inquiries and walk each through registered → ai_review → pending_approval.
// A failure on one inquiry reverts that inquiry and moves on to the next.
func (w *Worker) RunOnce(ctx context.Context) error {
	acquired, err := w.lock.Acquire()
	if err != nil {
		return fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		w.log.Infow("previous pass still running, skipping")
		return nil
	}
	defer w.lock.Release()

	batch, err := w.inquiries.ListOldestByStatus(ctx, vo.StatusRegistered, w.batchSize(), w.cfg.MaxAttempts)
	if err != nil {
		return fmt.Errorf("failed to select inquiries: %w", err)
	}
	if len(batch) == 0 {
		w.log.Debugw("no inquiries to process")
		return nil
	}

	w.log.Infow("processing inquiries", "count", len(batch))

	for _, inq := range batch {
		w.processOne(ctx, inq)
		// Pace model calls to stay under rate limits.
		w.sleep(w.pause())
	}

	return nil
}

func (w *Worker) processOne(ctx context.Context, inq *inquiry.Inquiry) {
	id := inq.ID()
	w.log.Infow("inquiry pipeline start", "inquiry_id", id, "title", inq.Title())

	_, err := w.engine.Transition(ctx, workflow.TransitionCommand{
		InquiryID: id,
		From:      vo.StatusRegistered,
		To:        vo.StatusAIReview,
		Actor:     "system",
	})
	if err != nil {
		if errors.Is(err, workflow.ErrConflict) {
			w.log.Infow("inquiry already picked up elsewhere", "inquiry_id", id)
			return
		}
		w.fail(ctx, inq, fmt.Errorf("failed to enter analysis: %w", err))
		return
	}

	feedback, err := w.logs.LatestFeedback(ctx, id)
	if err != nil {
		w.fail(ctx, inq, fmt.Errorf("failed to load admin feedback: %w", err))
		return
	}
	var adminFeedback string
	if feedback != nil {
		adminFeedback = feedback.FeedbackNote()
		w.log.Infow("admin feedback found, re-analyzing", "inquiry_id", id)
	}

	srv, err := w.lookupServer(ctx, inq)
	if err != nil {
		w.fail(ctx, inq, err)
		return
	}

	var diag map[string]string
	if srv != nil {
		diag = w.collector.Collect(ctx, srv)
		if diag == nil {
			w.log.Warnw("diagnostics unavailable", "inquiry_id", id, "site", srv.SiteName())
		} else {
			w.log.Infow("diagnostics collected", "inquiry_id", id, "probes", len(diag))
		}
	}

	// The model call runs outside any transaction; it can take minutes.
	report, err := w.analyzer.Analyze(ctx, analysis.AnalyzeRequest{
		Title:         inq.Title(),
		Content:       inq.Content(),
		Category:      inq.Category().String(),
		AdminFeedback: adminFeedback,
		Server:        srv,
		Diagnostics:   diag,
	})
	if err != nil {
		w.fail(ctx, inq, fmt.Errorf("analysis failed: %w", err))
		return
	}

	if err := w.approveRequest(ctx, inq, report); err != nil {
		if errors.Is(err, workflow.ErrConflict) {
			w.log.Infow("inquiry moved while analyzing, dropping result", "inquiry_id", id)
			return
		}
		w.fail(ctx, inq, err)
		return
	}

	if err := w.inquiries.ResetTriageAttempts(ctx, id); err != nil {
		w.log.Warnw("failed to reset triage attempts", "inquiry_id", id, "error", err)
	}

	w.notifier.Notify(approvalMessage(inq))
	w.log.Infow("inquiry awaiting approval", "inquiry_id", id)
}

// approveRequest lands the analysis: guarded ai_review → pending_approval,
// the report appended to the process log, and the report posted as a comment
// under an admin alias, all in one transaction.
func (w *Worker) approveRequest(ctx context.Context, inq *inquiry.Inquiry, report string) error {
	id := inq.ID()

	return w.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		moved, err := w.inquiries.UpdateStatusGuarded(txCtx, id, vo.StatusAIReview, vo.StatusPendingApproval)
		if err != nil {
			return err
		}
		if !moved {
			return workflow.ErrConflict
		}

		entry, err := inquiry.NewProcessLog(id, vo.StatusPendingApproval,
			"AI 분석이 완료되었습니다. 관리자 승인을 대기합니다.\n\n"+report, "system")
		if err != nil {
			return err
		}
		if err := w.logs.Append(txCtx, entry); err != nil {
			return err
		}

		comment, err := inquiry.NewSystemComment(id, w.pickAlias(), "📊 AI 분석 결과\n\n"+report)
		if err != nil {
			return err
		}
		return w.comments.Save(txCtx, comment)
	})
}

// fail reverts the inquiry so the next pass retries it: guarded ai_review →
// registered, the orphaned analysis log removed, the failure counted against
// the poison cap, and the operators alerted.
func (w *Worker) fail(ctx context.Context, inq *inquiry.Inquiry, cause error) {
	id := inq.ID()
	w.log.Errorw("inquiry pipeline failed", "inquiry_id", id, "error", cause)

	reverted, err := w.inquiries.UpdateStatusGuarded(ctx, id, vo.StatusAIReview, vo.StatusRegistered)
	if err != nil {
		w.log.Errorw("failed to revert inquiry", "inquiry_id", id, "error", err)
	} else if reverted {
		if err := w.logs.DeleteLatestByStep(ctx, id, vo.StatusAIReview); err != nil {
			w.log.Warnw("failed to remove stale analysis log", "inquiry_id", id, "error", err)
		}
		w.log.Infow("inquiry reverted for retry", "inquiry_id", id)
	}

	if err := w.inquiries.IncrementTriageAttempts(ctx, id); err != nil {
		w.log.Warnw("failed to count triage attempt", "inquiry_id", id, "error", err)
	} else if w.cfg.MaxAttempts > 0 && inq.TriageAttempts()+1 >= w.cfg.MaxAttempts {
		w.log.Warnw("inquiry parked after repeated failures",
			"inquiry_id", id, "attempts", inq.TriageAttempts()+1)
	}

	w.notifier.Notify(failureMessage(inq, cause))
}

func (w *Worker) lookupServer(ctx context.Context, inq *inquiry.Inquiry) (*server.Server, error) {
	if inq.SiteTag() == "" {
		return nil, nil
	}

	srv, err := w.servers.GetBySiteName(ctx, inq.SiteTag())
	if err != nil {
		if sharedErrors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up server: %w", err)
	}

	w.log.Infow("server resolved", "inquiry_id", inq.ID(), "site", srv.SiteName(), "host", srv.Host())
	return srv, nil
}

func (w *Worker) batchSize() int {
	if w.cfg.BatchSize <= 0 {
		return 5
	}
	return w.cfg.BatchSize
}

func (w *Worker) pause() time.Duration {
	if w.cfg.PauseSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(w.cfg.PauseSeconds) * time.Second
}

func approvalMessage(inq *inquiry.Inquiry) string {
	site := inq.SiteTag()
	if site == "" {
		site = "알 수 없음"
	}
	return fmt.Sprintf(
		"🤖 AI 분석 완료 - 승인 요청\n\n📌 문의 #%d\n📂 카테고리: %s\n📝 제목: %s\n🏢 사이트: %s\n⏰ %s KST\n\nAI가 문의를 분석하고 처리 방안을 도출했습니다.\n관리자 페이지에서 확인 후 승인해주세요.",
		inq.ID(), inq.Category(), inq.Title(), site,
		biztime.FormatInBizTimezone(biztime.NowUTC(), "2006-01-02 15:04"))
}

func failureMessage(inq *inquiry.Inquiry, cause error) string {
	return fmt.Sprintf("⚠️ AI 처리 오류 (%s KST)\n문의 #%d: %s\n오류: %v",
		biztime.FormatInBizTimezone(biztime.NowUTC(), "2006-01-02 15:04"),
		inq.ID(), inq.Title(), cause)
}
