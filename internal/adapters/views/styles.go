package views

const styles = `<style>
:root{--bg:#f7f8fa;--panel:#fff;--text:#1c2430;--muted:#5d6b7c;--border:#e2e6ec;--primary:#2563eb;--ok:#15803d;--warn:#b45309;--error:#b91c1c}
[data-theme="dark"]{--bg:#0f141b;--panel:#18202b;--text:#e6ebf2;--muted:#9aa7b8;--border:#263241;--primary:#60a5fa;--ok:#4ade80;--warn:#fbbf24;--error:#f87171}
*{box-sizing:border-box}body{margin:0;background:var(--bg);color:var(--text);font:15px/1.45 system-ui,sans-serif}
form{margin:0}
.navbar{background:var(--panel);border-bottom:1px solid var(--border)}
.navbar__inner{max-width:1200px;margin:0 auto;padding:12px 20px;display:flex;justify-content:space-between;align-items:center}
.navbar__brand,.navbar__right{display:flex;gap:10px;align-items:center}
.navbar__logo{width:32px;height:32px;border-radius:8px;background:var(--primary);color:#fff;display:grid;place-items:center;font-weight:700}
.navbar__title{font-weight:700}
.badge{padding:4px 10px;border-radius:999px;font-size:13px;border:1px solid currentColor}
.badge--ok{color:var(--ok)}.badge--warn{color:var(--warn)}
.page{max-width:1200px;margin:0 auto;padding:20px;display:grid;grid-template-columns:320px 1fr;gap:20px}
.panel{background:var(--panel);border:1px solid var(--border);border-radius:12px;padding:16px}
.panel__title{font-weight:700;margin-bottom:12px}
.panel__actions,.modal__actions,.detail__actions{display:flex;gap:8px;margin-top:12px}
.field{display:flex;flex-direction:column;gap:4px;margin-bottom:10px}
.field__label{font-size:13px;color:var(--muted)}
.input{padding:8px 10px;border:1px solid var(--border);border-radius:8px;background:var(--bg);color:var(--text)}
.grid2{display:grid;grid-template-columns:1fr 1fr;gap:10px}
.amenities,.hotel-card__amenities,.detail__amenities{display:flex;flex-wrap:wrap;gap:6px}
.chip{padding:3px 9px;border-radius:999px;border:1px solid var(--border);font-size:12px;background:var(--bg);color:var(--text)}
.chip--selectable{cursor:pointer}.chip--active{background:var(--primary);color:#fff;border-color:var(--primary)}
.btn,.theme-toggle,.icon-btn{padding:8px 14px;border-radius:8px;border:1px solid var(--border);cursor:pointer;background:var(--panel);color:var(--text)}
.btn-primary{background:var(--primary);border-color:var(--primary);color:#fff}
.btn[disabled]{opacity:.6;cursor:default}
.alert{margin-top:12px;padding:10px;border-radius:8px;border:1px solid currentColor}
.alert--error{color:var(--error)}.alert--success{color:var(--ok)}
.results{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:14px}
.hotel-card{width:100%;text-align:left;padding:0;border:1px solid var(--border);border-radius:12px;overflow:hidden;background:var(--panel);color:var(--text);cursor:pointer}
.hotel-card__media{height:150px;background:var(--border)}
.hotel-card__img,.detail__img,.gallery__img{width:100%;height:100%;object-fit:cover;display:block}
.hotel-card__placeholder,.detail__placeholder{height:100%;display:grid;place-items:center;color:var(--muted)}
.hotel-card__body{padding:12px;display:flex;flex-direction:column;gap:6px}
.hotel-card__top,.detail__titleRow{display:flex;justify-content:space-between;gap:8px}
.hotel-card__name,.detail__name{font-weight:700}
.hotel-card__meta,.detail__sub,.hotel-card__priceUnit,.detail__priceUnit{color:var(--muted);font-size:13px}
.detail__hero{display:grid;grid-template-columns:1fr 1fr;gap:16px}
.detail__img,.detail__placeholder{height:280px;border-radius:10px}
.detail__heroInfo{display:flex;flex-direction:column;gap:10px}
.detail__priceValue{font-size:22px;font-weight:700}
.gallery{display:grid;grid-template-columns:repeat(3,1fr);gap:8px;margin-top:14px}.gallery__img{height:120px;border-radius:8px}
.empty{text-align:center;padding:40px 10px;color:var(--muted)}.empty__title{font-weight:700;color:var(--text)}
.modal__backdrop{position:fixed;inset:0;background:rgba(0,0,0,.45);display:grid;place-items:center}
.modal{background:var(--panel);border-radius:14px;width:min(560px,94vw);padding:18px}
.modal__header{display:flex;justify-content:space-between;align-items:start}
.modal__title{font-weight:700}.modal__subtitle{color:var(--muted)}
.price-box{border:1px dashed var(--border);border-radius:8px;padding:8px 10px}
.price-box__row{display:flex;justify-content:space-between}.price-box__total{font-weight:700}
@media (max-width:800px){.page{grid-template-columns:1fr}.detail__hero{grid-template-columns:1fr}}
</style>`
